package requestid_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-bot-admin/internal/requestid"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	require.Empty(t, requestid.FromContext(context.Background()))

	id := requestid.New()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	ctx := requestid.WithContext(context.Background(), id)
	require.Equal(t, id, requestid.FromContext(ctx))
}
