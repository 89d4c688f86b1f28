package interfaces

import (
	"context"
	"emilykids_erp/internal/domain/entities"
)

// Sale lifecycle event types published to the events queue.
const (
	EventSaleFinalized = "venda.finalizada"
	EventSaleCancelled = "venda.cancelada"
)

// IEventPublisher notifies downstream consumers (reporting, notifications)
// about sale lifecycle changes. A nil publisher means events are disabled.
type IEventPublisher interface {
	PublishSaleEvent(ctx context.Context, eventType string, sale entities.Sale) error
}
