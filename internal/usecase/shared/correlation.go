package shared

import (
	"context"

	"github.com/google/uuid"
)

type correlationKey struct{}

// WithCorrelationID tags ctx so logs and published events of one inbound
// update can be joined.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, correlationKey{}, id)
}

func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationKey{}).(string); ok {
		return id
	}
	return ""
}
