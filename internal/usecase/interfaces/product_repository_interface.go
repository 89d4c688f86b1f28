package interfaces

import (
	"context"
	"emilykids_erp/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product and its
// stock counters.
//
// Counter operations are atomic conditional updates. Every one of them
// returns the zero-value Product when the condition fails (missing product
// or insufficient quantity); callers resolve which of the two it was.
//
// Semantics:
//   - Reserve: available -= qty, reserved += qty (needs available >= qty)
//   - Release: reserved -= qty, available += qty (needs reserved >= qty)
//   - Deduct: available -= qty (needs available >= qty)
//   - Adjust: available += delta (needs available >= -delta for negative delta)

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Reserve(ctx context.Context, id string, qty int) (entities.Product, error)
	Release(ctx context.Context, id string, qty int) (entities.Product, error)
	Deduct(ctx context.Context, id string, qty int) (entities.Product, error)
	Adjust(ctx context.Context, id string, delta int) (entities.Product, error)
}
