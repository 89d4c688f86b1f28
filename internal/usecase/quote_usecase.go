package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"emilykids_erp/internal/domain/entities"
	"emilykids_erp/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuoteID        = errors.New("invalid orcamento id")
	ErrInvalidCustomerID     = errors.New("invalid cliente_id")
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrQuoteNotOpen          = errors.New("quote is not open")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrPaymentMethodRequired = errors.New("payment method required")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrCancelReasonRequired  = errors.New("cancellation reason required")
)

// CreateQuoteCommand is the validated input for quote creation.
type CreateQuoteCommand struct {
	CustomerID string
	Items      []ItemCommand
	Discount   float64
	Freight    float64
}

// ConvertQuoteCommand finalizes a quote into a sale. Items is the edited
// buffer from the conversion dialog; it replaces the quote's items entirely.
type ConvertQuoteCommand struct {
	PaymentMethod entities.PaymentMethod
	Installments  int
	DueDate       time.Time
	Discount      float64
	Freight       float64
	Notes         string
	Items         []ItemCommand
}

// IQuoteUseCase exposes the quote (orçamento) lifecycle:
//   - Create reserves stock for every line item.
//   - ConvertToSale consumes the reservation and produces a sale plus its
//     accounts-receivable installments.
//   - Cancel / ReturnToStock release the reservation.

type IQuoteUseCase interface {
	Create(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	ConvertToSale(ctx context.Context, quoteID string, cmd ConvertQuoteCommand) (entities.Sale, error)
	Cancel(ctx context.Context, id, reason string) (entities.Quote, error)
	ReturnToStock(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	quotes      interfaces.IQuoteRepository
	sales       interfaces.ISaleRepository
	products    interfaces.IProductRepository
	customers   interfaces.ICustomerRepository
	receivables interfaces.IReceivableRepository
	events      interfaces.IEventPublisher
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	sales interfaces.ISaleRepository,
	products interfaces.IProductRepository,
	customers interfaces.ICustomerRepository,
	receivables interfaces.IReceivableRepository,
	events interfaces.IEventPublisher,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:      quotes,
		sales:       sales,
		products:    products,
		customers:   customers,
		receivables: receivables,
		events:      events,
	}
}

func (u *QuoteUseCase) Create(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error) {
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return entities.Quote{}, ErrInvalidCustomerID
	}
	if cmd.Discount < 0 || cmd.Freight < 0 {
		return entities.Quote{}, ErrInvalidAmount
	}

	items, err := resolveLineItems(ctx, u.products, cmd.Items, nil)
	if err != nil {
		return entities.Quote{}, err
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.Quote{}, err
	}
	if customer.ID == "" {
		return entities.Quote{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}

	if err := u.reserveItems(ctx, items); err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Items:      items,
		Discount:   cmd.Discount,
		Freight:    cmd.Freight,
		Total:      entities.ComputeTotal(items, cmd.Discount, cmd.Freight),
		Status:     entities.QuoteStatusAberto,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		u.releaseItems(ctx, items)
		return entities.Quote{}, err
	}
	log.Printf("[orcamento][usecase] created id=%s cliente_id=%s itens=%d total=%.2f", created.ID, customerID, len(items), created.Total)
	return created, nil
}

// reserveItems reserves stock for every item, releasing the ones already
// reserved if any reservation fails.
func (u *QuoteUseCase) reserveItems(ctx context.Context, items []entities.LineItem) error {
	for i, it := range items {
		p, err := u.products.Reserve(ctx, it.ProductID, it.Quantity)
		if err == nil && p.ID == "" {
			err = u.stockUnavailable(ctx, it.ProductID, it.Quantity)
		}
		if err != nil {
			u.releaseItems(ctx, items[:i])
			return err
		}
	}
	return nil
}

func (u *QuoteUseCase) releaseItems(ctx context.Context, items []entities.LineItem) {
	for _, it := range items {
		if _, err := u.products.Release(ctx, it.ProductID, it.Quantity); err != nil {
			log.Printf("[orcamento][usecase] release failed produto_id=%s quantidade=%d err=%v", it.ProductID, it.Quantity, err)
		}
	}
}

// stockUnavailable builds the availability error for a failed conditional
// stock mutation, re-reading the product for fresh counters.
func (u *QuoteUseCase) stockUnavailable(ctx context.Context, productID string, quantity int) error {
	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	return &StockUnavailableError{ProductID: productID, Availability: availabilityFor(p, quantity)}
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.quotes.List(ctx)
}

func (u *QuoteUseCase) ConvertToSale(ctx context.Context, quoteID string, cmd ConvertQuoteCommand) (entities.Sale, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Sale{}, ErrInvalidQuoteID
	}
	if cmd.PaymentMethod == "" {
		return entities.Sale{}, ErrPaymentMethodRequired
	}
	if !validPaymentMethod(cmd.PaymentMethod) {
		return entities.Sale{}, ErrInvalidPaymentMethod
	}
	if cmd.Discount < 0 || cmd.Freight < 0 {
		return entities.Sale{}, ErrInvalidAmount
	}

	quote, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Sale{}, err
	}
	if quote.ID == "" {
		return entities.Sale{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusAberto {
		return entities.Sale{}, ErrQuoteNotOpen
	}

	// Items omitted in the command default to the quote's own price.
	priceHint := make(map[string]float64, len(quote.Items))
	for _, it := range quote.Items {
		priceHint[it.ProductID] = it.UnitPrice
	}
	items, err := resolveLineItems(ctx, u.products, cmd.Items, priceHint)
	if err != nil {
		return entities.Sale{}, err
	}

	installments := cmd.Installments
	if cmd.PaymentMethod.IsCash() || installments < 1 {
		installments = 1
	}
	dueDate := cmd.DueDate
	if dueDate.IsZero() {
		dueDate = time.Now().UTC().AddDate(0, 1, 0)
	}

	// Claim the quote first so a concurrent conversion or cancellation
	// cannot also win. The conditional status update is the lock.
	claimed, err := u.quotes.UpdateStatus(ctx, quoteID, entities.QuoteStatusAberto, entities.QuoteStatusConvertido, "")
	if err != nil {
		return entities.Sale{}, err
	}
	if claimed.ID == "" {
		return entities.Sale{}, ErrQuoteNotOpen
	}

	if err := u.settleStockForConversion(ctx, quote, items); err != nil {
		u.revertClaim(ctx, quoteID)
		return entities.Sale{}, err
	}

	now := time.Now().UTC()
	sale := entities.Sale{
		ID:              uuid.NewString(),
		CustomerID:      quote.CustomerID,
		QuoteID:         quote.ID,
		Items:           items,
		Discount:        cmd.Discount,
		Freight:         cmd.Freight,
		Total:           entities.ComputeTotal(items, cmd.Discount, cmd.Freight),
		PaymentMethod:   cmd.PaymentMethod,
		InstallmentsNum: installments,
		DueDate:         dueDate,
		Notes:           strings.TrimSpace(cmd.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.sales.Create(ctx, sale)
	if err != nil {
		u.undoStockForConversion(ctx, quote, items)
		u.revertClaim(ctx, quoteID)
		return entities.Sale{}, err
	}

	if err := u.receivables.CreateBatch(ctx, buildInstallments(created, now)); err != nil {
		log.Printf("[orcamento][usecase] installment creation failed venda_id=%s err=%v", created.ID, err)
		u.voidSale(ctx, created.ID)
		u.undoStockForConversion(ctx, quote, items)
		u.revertClaim(ctx, quoteID)
		return entities.Sale{}, err
	}

	u.publish(ctx, interfaces.EventSaleFinalized, created)
	log.Printf("[orcamento][usecase] converted orcamento_id=%s venda_id=%s total=%.2f parcelas=%d", quoteID, created.ID, created.Total, installments)
	return created, nil
}

// settleStockForConversion releases every reservation held by the quote and
// deducts the final buffer from available stock. Rolls itself back on
// failure.
func (u *QuoteUseCase) settleStockForConversion(ctx context.Context, quote entities.Quote, items []entities.LineItem) error {
	for i, it := range quote.Items {
		p, err := u.products.Release(ctx, it.ProductID, it.Quantity)
		if err == nil && p.ID == "" {
			err = fmt.Errorf("%w: reservation missing for produto_id=%s", ErrStockUnavailable, it.ProductID)
		}
		if err != nil {
			u.reserveBack(ctx, quote.Items[:i])
			return err
		}
	}

	for i, it := range items {
		p, err := u.products.Deduct(ctx, it.ProductID, it.Quantity)
		if err == nil && p.ID == "" {
			err = u.stockUnavailable(ctx, it.ProductID, it.Quantity)
		}
		if err != nil {
			u.restockItems(ctx, items[:i])
			u.reserveBack(ctx, quote.Items)
			return err
		}
	}
	return nil
}

func (u *QuoteUseCase) undoStockForConversion(ctx context.Context, quote entities.Quote, items []entities.LineItem) {
	u.restockItems(ctx, items)
	u.reserveBack(ctx, quote.Items)
}

func (u *QuoteUseCase) restockItems(ctx context.Context, items []entities.LineItem) {
	for _, it := range items {
		if _, err := u.products.Adjust(ctx, it.ProductID, it.Quantity); err != nil {
			log.Printf("[orcamento][usecase] restock failed produto_id=%s quantidade=%d err=%v", it.ProductID, it.Quantity, err)
		}
	}
}

func (u *QuoteUseCase) reserveBack(ctx context.Context, items []entities.LineItem) {
	for _, it := range items {
		if _, err := u.products.Reserve(ctx, it.ProductID, it.Quantity); err != nil {
			log.Printf("[orcamento][usecase] re-reserve failed produto_id=%s quantidade=%d err=%v", it.ProductID, it.Quantity, err)
		}
	}
}

// voidSale cancels a sale whose installments could not be created, so no
// finalized sale is left without its contas a receber.
func (u *QuoteUseCase) voidSale(ctx context.Context, saleID string) {
	if _, err := u.sales.Cancel(ctx, saleID, "parcelas nao geradas"); err != nil {
		log.Printf("[orcamento][usecase] sale void failed venda_id=%s err=%v", saleID, err)
	}
}

func (u *QuoteUseCase) revertClaim(ctx context.Context, quoteID string) {
	if _, err := u.quotes.UpdateStatus(ctx, quoteID, entities.QuoteStatusConvertido, entities.QuoteStatusAberto, ""); err != nil {
		log.Printf("[orcamento][usecase] claim revert failed orcamento_id=%s err=%v", quoteID, err)
	}
}

func (u *QuoteUseCase) Cancel(ctx context.Context, id, reason string) (entities.Quote, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Quote{}, ErrCancelReasonRequired
	}
	return u.closeQuote(ctx, id, entities.QuoteStatusCancelado, reason)
}

func (u *QuoteUseCase) ReturnToStock(ctx context.Context, id string) (entities.Quote, error) {
	return u.closeQuote(ctx, id, entities.QuoteStatusRetornado, "")
}

func (u *QuoteUseCase) closeQuote(ctx context.Context, id string, status entities.QuoteStatus, reason string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.quotes.UpdateStatus(ctx, id, entities.QuoteStatusAberto, status, reason)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		existing, err := u.quotes.GetByID(ctx, id)
		if err != nil {
			return entities.Quote{}, err
		}
		if existing.ID == "" {
			return entities.Quote{}, ErrQuoteNotFound
		}
		return entities.Quote{}, ErrQuoteNotOpen
	}

	u.releaseItems(ctx, updated.Items)
	log.Printf("[orcamento][usecase] closed id=%s status=%s", id, status)
	return updated, nil
}

func (u *QuoteUseCase) publish(ctx context.Context, eventType string, sale entities.Sale) {
	if u.events == nil {
		return
	}
	if err := u.events.PublishSaleEvent(ctx, eventType, sale); err != nil {
		log.Printf("[orcamento][usecase] event publish failed type=%s venda_id=%s err=%v", eventType, sale.ID, err)
	}
}
