package interfaces

import (
	"context"
	"emilykids_erp/internal/domain/entities"
)

// ISaleRepository abstracts DynamoDB persistence for Sale.
//
// Cancel is conditional on the sale not being cancelled yet and returns the
// zero-value Sale when the condition fails.

type ISaleRepository interface {
	Create(ctx context.Context, s entities.Sale) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context) ([]entities.Sale, error)
	Cancel(ctx context.Context, id, reason string) (entities.Sale, error)
}
