package services

import (
	"context"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type actorKey struct{}

// WithActor attaches the staff member performing an operation. It ends up
// in CreatedBy and ModifiedBy.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFrom(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}

	return domain.SystemActor
}
