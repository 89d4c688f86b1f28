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
	ErrInvalidProductName = errors.New("invalid product name")
	ErrInvalidProductSKU  = errors.New("invalid product sku")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInvalidStockDelta  = errors.New("invalid stock delta")
)

type CreateProductCommand struct {
	Name         string
	SKU          string
	Price        float64
	InitialStock int
}

type IProductUseCase interface {
	Create(ctx context.Context, cmd CreateProductCommand) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) Create(ctx context.Context, cmd CreateProductCommand) (entities.Product, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	sku := strings.TrimSpace(cmd.SKU)
	if sku == "" {
		return entities.Product{}, ErrInvalidProductSKU
	}
	if cmd.Price < 0 {
		return entities.Product{}, ErrInvalidPrice
	}
	if cmd.InitialStock < 0 {
		return entities.Product{}, ErrInvalidStockDelta
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:        uuid.NewString(),
		Name:      name,
		SKU:       sku,
		Price:     cmd.Price,
		Available: cmd.InitialStock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

// AdjustStock applies a manual correction to the available counter. Negative
// deltas are rejected when they would drive availability below zero.
func (u *ProductUseCase) AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if delta == 0 {
		return entities.Product{}, ErrInvalidStockDelta
	}

	p, err := u.repo.Adjust(ctx, id, delta)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		existing, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Product{}, err
		}
		if existing.ID == "" {
			return entities.Product{}, ErrProductNotFound
		}
		return entities.Product{}, ErrInvalidStockDelta
	}
	log.Printf("[produto][usecase] stock adjusted id=%s delta=%d disponivel=%d", id, delta, p.Available)
	return p, nil
}
