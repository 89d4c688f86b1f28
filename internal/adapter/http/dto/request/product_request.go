package request

import "emilykids_erp/internal/usecase"

type CreateProductRequest struct {
	Name         string  `json:"nome" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	Price        float64 `json:"preco" binding:"gte=0"`
	InitialStock int     `json:"estoque_inicial" binding:"gte=0"`
}

func (r CreateProductRequest) ToCommand() usecase.CreateProductCommand {
	return usecase.CreateProductCommand{
		Name:         r.Name,
		SKU:          r.SKU,
		Price:        r.Price,
		InitialStock: r.InitialStock,
	}
}

// AdjustStockRequest applies a signed correction to available stock.
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}
