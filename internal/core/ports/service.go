package ports

import (
	"context"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

// Service is the operation set every entity family exposes to callers.
type Service[ID comparable, Read, Create, Update any] interface {
	GetByID(ctx context.Context, id ID) domain.OperationResult[Read]
	GetAll(ctx context.Context) domain.OperationResult[[]Read]
	Create(ctx context.Context, in Create) domain.OperationResult[Read]
	Update(ctx context.Context, in Update) domain.OperationResult[Read]
}
