package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header carries the request id on inbound responses and outbound Bot API calls.
const Header = "X-Request-ID"

type contextKey struct{}

// New returns a fresh request id.
func New() string {
	return uuid.NewString()
}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id stored in ctx, or "" when there is none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
