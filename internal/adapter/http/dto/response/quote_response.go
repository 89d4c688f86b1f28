package response

import (
	"time"

	"emilykids_erp/internal/domain/entities"
)

type LineItemResponse struct {
	ProductID   string  `json:"produto_id"`
	ProductName string  `json:"produto_nome,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	Quantity    int     `json:"quantidade"`
	UnitPrice   float64 `json:"preco_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

type QuoteResponse struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"cliente_id"`
	Items        []LineItemResponse `json:"itens"`
	Discount     float64            `json:"desconto"`
	Freight      float64            `json:"frete"`
	Total        float64            `json:"total"`
	Status       string             `json:"status"`
	CancelReason string             `json:"motivo_cancelamento,omitempty"`
	CancelledAt  *time.Time         `json:"cancelado_em,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		CustomerID:   q.CustomerID,
		Items:        fromLineItems(q.Items),
		Discount:     q.Discount,
		Freight:      q.Freight,
		Total:        q.Total,
		Status:       string(q.Status),
		CancelReason: q.CancelReason,
		CancelledAt:  q.CancelledAt,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return out
}
