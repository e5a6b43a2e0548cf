package errors_test

import (
	"fmt"
	"testing"

	"github.com/jrsteele09/go-bot-admin/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	require.NoError(t, errors.Wrapf(nil, "ignored"))

	err := errors.Wrapf(errors.ErrRefreshRejected, "[rotate] status %d", 401)
	require.EqualError(t, err, "[rotate] status 401: refresh token rejected")
	require.True(t, errors.Is(err, errors.ErrRefreshRejected))
	require.False(t, errors.Is(err, errors.ErrIncompleteTokens))
}

type statusError struct{ code int }

func (e *statusError) Error() string { return fmt.Sprintf("status %d", e.code) }

func TestAs(t *testing.T) {
	err := errors.Wrapf(&statusError{code: 502}, "[call]")

	var target *statusError
	require.True(t, errors.As(err, &target))
	require.Equal(t, 502, target.code)
}
