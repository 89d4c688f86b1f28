package interfaces

import (
	"context"
	"emilykids_erp/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// UpdateStatus is conditional on the current status so two concurrent
// conversions (or a conversion racing a cancellation) cannot both win; the
// loser gets the zero-value Quote back.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus, reason string) (entities.Quote, error)
}
