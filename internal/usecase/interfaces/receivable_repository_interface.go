package interfaces

import (
	"context"
	"emilykids_erp/internal/domain/entities"
)

// IReceivableRepository abstracts DynamoDB persistence for accounts
// receivable installments.

type IReceivableRepository interface {
	CreateBatch(ctx context.Context, installments []entities.Installment) error
	GetByID(ctx context.Context, id string) (entities.Installment, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.Installment, error)
	// MarkPaid transitions pendente -> pago; zero value when the installment
	// is missing or not pendente.
	MarkPaid(ctx context.Context, id string) (entities.Installment, error)
	// CancelPendingBySaleID cancels every pendente installment of a sale and
	// returns how many were cancelled.
	CancelPendingBySaleID(ctx context.Context, saleID string) (int, error)
}
