package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"emilykids_erp/internal/domain/entities"
	"emilykids_erp/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSaleID        = errors.New("invalid venda id")
	ErrSaleNotFound         = errors.New("sale not found")
	ErrSaleAlreadyCancelled = errors.New("sale already cancelled")
)

// CreateSaleCommand is the validated input for a direct sale (no quote).
type CreateSaleCommand struct {
	CustomerID    string
	Items         []ItemCommand
	Discount      float64
	Freight       float64
	PaymentMethod entities.PaymentMethod
	Installments  int
	DueDate       time.Time
	Notes         string
}

// ISaleUseCase exposes sale (venda) operations. A direct sale deducts
// available stock immediately; cancellation returns it and cancels the
// pending receivable installments.

type ISaleUseCase interface {
	Create(ctx context.Context, cmd CreateSaleCommand) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context) ([]entities.Sale, error)
	Cancel(ctx context.Context, id, reason string) (entities.Sale, error)
}

type SaleUseCase struct {
	sales       interfaces.ISaleRepository
	products    interfaces.IProductRepository
	customers   interfaces.ICustomerRepository
	receivables interfaces.IReceivableRepository
	events      interfaces.IEventPublisher
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(
	sales interfaces.ISaleRepository,
	products interfaces.IProductRepository,
	customers interfaces.ICustomerRepository,
	receivables interfaces.IReceivableRepository,
	events interfaces.IEventPublisher,
) *SaleUseCase {
	return &SaleUseCase{
		sales:       sales,
		products:    products,
		customers:   customers,
		receivables: receivables,
		events:      events,
	}
}

func (u *SaleUseCase) Create(ctx context.Context, cmd CreateSaleCommand) (entities.Sale, error) {
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return entities.Sale{}, ErrInvalidCustomerID
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

	items, err := resolveLineItems(ctx, u.products, cmd.Items, nil)
	if err != nil {
		return entities.Sale{}, err
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.Sale{}, err
	}
	if customer.ID == "" {
		return entities.Sale{}, ErrCustomerNotFound
	}

	if err := u.deductItems(ctx, items); err != nil {
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

	now := time.Now().UTC()
	sale := entities.Sale{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
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
		u.restockItems(ctx, items)
		return entities.Sale{}, err
	}

	if err := u.receivables.CreateBatch(ctx, buildInstallments(created, now)); err != nil {
		log.Printf("[venda][usecase] installment creation failed venda_id=%s err=%v", created.ID, err)
		u.voidSale(ctx, created.ID)
		u.restockItems(ctx, items)
		return entities.Sale{}, err
	}

	u.publish(ctx, interfaces.EventSaleFinalized, created)
	log.Printf("[venda][usecase] created id=%s cliente_id=%s total=%.2f forma_pagamento=%s parcelas=%d",
		created.ID, customerID, created.Total, created.PaymentMethod, installments)
	return created, nil
}

// deductItems removes each item from available stock, restocking the already
// deducted ones if any deduction fails.
func (u *SaleUseCase) deductItems(ctx context.Context, items []entities.LineItem) error {
	for i, it := range items {
		p, err := u.products.Deduct(ctx, it.ProductID, it.Quantity)
		if err == nil && p.ID == "" {
			err = u.stockUnavailable(ctx, it.ProductID, it.Quantity)
		}
		if err != nil {
			u.restockItems(ctx, items[:i])
			return err
		}
	}
	return nil
}

func (u *SaleUseCase) restockItems(ctx context.Context, items []entities.LineItem) {
	for _, it := range items {
		if _, err := u.products.Adjust(ctx, it.ProductID, it.Quantity); err != nil {
			log.Printf("[venda][usecase] restock failed produto_id=%s quantidade=%d err=%v", it.ProductID, it.Quantity, err)
		}
	}
}

// voidSale cancels a sale whose installments could not be created, so no
// finalized sale is left without its contas a receber.
func (u *SaleUseCase) voidSale(ctx context.Context, saleID string) {
	if _, err := u.sales.Cancel(ctx, saleID, "parcelas nao geradas"); err != nil {
		log.Printf("[venda][usecase] sale void failed venda_id=%s err=%v", saleID, err)
	}
}

func (u *SaleUseCase) stockUnavailable(ctx context.Context, productID string, quantity int) error {
	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProductNotFound
	}
	return &StockUnavailableError{ProductID: productID, Availability: availabilityFor(p, quantity)}
}

func (u *SaleUseCase) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}

	s, err := u.sales.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

func (u *SaleUseCase) List(ctx context.Context) ([]entities.Sale, error) {
	return u.sales.List(ctx)
}

func (u *SaleUseCase) Cancel(ctx context.Context, id, reason string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Sale{}, ErrCancelReasonRequired
	}

	cancelled, err := u.sales.Cancel(ctx, id, reason)
	if err != nil {
		return entities.Sale{}, err
	}
	if cancelled.ID == "" {
		existing, err := u.sales.GetByID(ctx, id)
		if err != nil {
			return entities.Sale{}, err
		}
		if existing.ID == "" {
			return entities.Sale{}, ErrSaleNotFound
		}
		return entities.Sale{}, ErrSaleAlreadyCancelled
	}

	// Stock return and installment cancellation are best-effort follow-ups;
	// the cancellation itself already won.
	u.restockItems(ctx, cancelled.Items)
	if n, err := u.receivables.CancelPendingBySaleID(ctx, id); err != nil {
		log.Printf("[venda][usecase] installment cancellation failed venda_id=%s err=%v", id, err)
	} else if n > 0 {
		log.Printf("[venda][usecase] cancelled %d pending installments venda_id=%s", n, id)
	}

	u.publish(ctx, interfaces.EventSaleCancelled, cancelled)
	log.Printf("[venda][usecase] cancelled id=%s motivo=%q", id, reason)
	return cancelled, nil
}

func (u *SaleUseCase) publish(ctx context.Context, eventType string, sale entities.Sale) {
	if u.events == nil {
		return
	}
	if err := u.events.PublishSaleEvent(ctx, eventType, sale); err != nil {
		log.Printf("[venda][usecase] event publish failed type=%s venda_id=%s err=%v", eventType, sale.ID, err)
	}
}
