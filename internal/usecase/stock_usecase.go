package usecase

import (
	"context"
	"fmt"
	"strings"

	"emilykids_erp/internal/domain/entities"
	"emilykids_erp/internal/usecase/interfaces"
)

// IStockUseCase exposes the stock availability check used by the quote
// builder before an item may be added.
//
// The check is a pure query: it never reserves anything. Reservation happens
// when the quote is persisted.

type IStockUseCase interface {
	CheckAvailability(ctx context.Context, productID string, quantity int) (entities.StockAvailability, error)
}

type StockUseCase struct {
	products interfaces.IProductRepository
}

var _ IStockUseCase = (*StockUseCase)(nil)

func NewStockUseCase(products interfaces.IProductRepository) *StockUseCase {
	return &StockUseCase{products: products}
}

func (u *StockUseCase) CheckAvailability(ctx context.Context, productID string, quantity int) (entities.StockAvailability, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.StockAvailability{}, ErrInvalidProductID
	}
	if quantity <= 0 {
		return entities.StockAvailability{}, ErrInvalidQuantity
	}

	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.StockAvailability{}, err
	}
	if p.ID == "" {
		return entities.StockAvailability{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	return availabilityFor(p, quantity), nil
}

func availabilityFor(p entities.Product, quantity int) entities.StockAvailability {
	if p.Available >= quantity {
		return entities.StockAvailability{
			Available:         true,
			QuantityAvailable: p.Available,
			QuantityReserved:  p.Reserved,
			Message:           "estoque disponível",
		}
	}
	return entities.StockAvailability{
		Available:         false,
		QuantityAvailable: p.Available,
		QuantityReserved:  p.Reserved,
		Message: fmt.Sprintf("estoque insuficiente para %s: disponível %d, reservado %d, solicitado %d",
			p.Name, p.Available, p.Reserved, quantity),
	}
}
