package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"emilykids_erp/internal/domain/entities"
	"emilykids_erp/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoItems          = errors.New("no line items")
	ErrDuplicateItem    = errors.New("item already added")
	ErrInvalidProductID = errors.New("invalid produto_id")
	ErrInvalidQuantity  = errors.New("invalid quantidade")
	ErrInvalidUnitPrice = errors.New("invalid preco_unitario")
	ErrInvalidAmount    = errors.New("invalid desconto/frete")
	ErrProductNotFound  = errors.New("product not found")
	ErrStockUnavailable = errors.New("stock unavailable")
)

// StockUnavailableError carries the availability snapshot so handlers can
// surface the exact message the stock check would have produced.
type StockUnavailableError struct {
	ProductID    string
	Availability entities.StockAvailability
}

func (e *StockUnavailableError) Error() string {
	if e.Availability.Message != "" {
		return e.Availability.Message
	}
	return fmt.Sprintf("estoque insuficiente para o produto %s", e.ProductID)
}

func (e *StockUnavailableError) Is(target error) bool {
	return target == ErrStockUnavailable
}

// ItemCommand is one requested line item. UnitPrice nil means "use the
// product's list price" (or the quote's price during conversion).
type ItemCommand struct {
	ProductID string
	Quantity  int
	UnitPrice *float64
}

// resolveLineItems validates the requested items and materializes them with
// product name, sku and unit price. priceHint maps produto_id to a preferred
// default price (the originating quote's prices during conversion).
func resolveLineItems(ctx context.Context, products interfaces.IProductRepository, cmds []ItemCommand, priceHint map[string]float64) ([]entities.LineItem, error) {
	if len(cmds) == 0 {
		return nil, ErrNoItems
	}

	seen := make(map[string]struct{}, len(cmds))
	items := make([]entities.LineItem, 0, len(cmds))
	for _, cmd := range cmds {
		productID := strings.TrimSpace(cmd.ProductID)
		if productID == "" {
			return nil, ErrInvalidProductID
		}
		if cmd.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if _, dup := seen[productID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, productID)
		}
		seen[productID] = struct{}{}

		p, err := products.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}

		price := p.Price
		if hint, ok := priceHint[productID]; ok {
			price = hint
		}
		if cmd.UnitPrice != nil {
			price = *cmd.UnitPrice
		}
		if price < 0 {
			return nil, ErrInvalidUnitPrice
		}

		item := entities.LineItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			SKU:         p.SKU,
			Quantity:    cmd.Quantity,
			UnitPrice:   price,
		}
		item.Subtotal = item.LineSubtotal()
		items = append(items, item)
	}
	return items, nil
}

// buildInstallments splits the sale total into n monthly installments. The
// last installment absorbs the rounding remainder so the amounts sum exactly
// to the total.
func buildInstallments(sale entities.Sale, now time.Time) []entities.Installment {
	n := sale.InstallmentsNum
	if n < 1 {
		n = 1
	}

	cents := int64(math.Round(sale.Total * 100))
	base := float64(cents/int64(n)) / 100
	installments := make([]entities.Installment, 0, n)
	accumulated := 0.0
	for i := 0; i < n; i++ {
		amount := base
		if i == n-1 {
			amount = roundCents(sale.Total - accumulated)
		}
		accumulated = roundCents(accumulated + amount)

		installments = append(installments, entities.Installment{
			ID:        uuid.NewString(),
			SaleID:    sale.ID,
			Number:    i + 1,
			Amount:    amount,
			DueDate:   sale.DueDate.AddDate(0, i, 0),
			Status:    entities.InstallmentStatusPendente,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return installments
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func validPaymentMethod(m entities.PaymentMethod) bool {
	switch m {
	case entities.PaymentMethodDinheiro, entities.PaymentMethodPix,
		entities.PaymentMethodCartao, entities.PaymentMethodCrediario:
		return true
	}
	return false
}
