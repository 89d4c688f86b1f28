package response

import (
	"time"

	"emilykids_erp/internal/domain/entities"
)

type SaleResponse struct {
	ID              string             `json:"id"`
	CustomerID      string             `json:"cliente_id"`
	QuoteID         string             `json:"orcamento_id,omitempty"`
	Items           []LineItemResponse `json:"itens"`
	Discount        float64            `json:"desconto"`
	Freight         float64            `json:"frete"`
	Total           float64            `json:"total"`
	PaymentMethod   string             `json:"forma_pagamento"`
	InstallmentsNum int                `json:"numero_parcelas"`
	DueDate         time.Time          `json:"data_vencimento"`
	Notes           string             `json:"observacoes,omitempty"`
	Cancelled       bool               `json:"cancelada"`
	CancelReason    string             `json:"motivo_cancelamento,omitempty"`
	CancelledAt     *time.Time         `json:"cancelada_em,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:              s.ID,
		CustomerID:      s.CustomerID,
		QuoteID:         s.QuoteID,
		Items:           fromLineItems(s.Items),
		Discount:        s.Discount,
		Freight:         s.Freight,
		Total:           s.Total,
		PaymentMethod:   string(s.PaymentMethod),
		InstallmentsNum: s.InstallmentsNum,
		DueDate:         s.DueDate,
		Notes:           s.Notes,
		Cancelled:       s.Cancelled,
		CancelReason:    s.CancelReason,
		CancelledAt:     s.CancelledAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func FromSales(sales []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}
