package response

import (
	"time"

	"emilykids_erp/internal/domain/entities"
)

type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	SKU       string    `json:"sku"`
	Price     float64   `json:"preco"`
	Available int       `json:"estoque_disponivel"`
	Reserved  int       `json:"estoque_reservado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		Available: p.Available,
		Reserved:  p.Reserved,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

// StockCheckResponse mirrors the transient availability result.
type StockCheckResponse struct {
	Available         bool   `json:"disponivel"`
	QuantityAvailable int    `json:"estoque_disponivel"`
	QuantityReserved  int    `json:"estoque_reservado"`
	Message           string `json:"mensagem"`
}

func FromStockAvailability(a entities.StockAvailability) StockCheckResponse {
	return StockCheckResponse{
		Available:         a.Available,
		QuantityAvailable: a.QuantityAvailable,
		QuantityReserved:  a.QuantityReserved,
		Message:           a.Message,
	}
}
