package request

import (
	"errors"
	"time"

	"emilykids_erp/internal/usecase"
)

var ErrInvalidDueDate = errors.New("invalid data_vencimento")

// ItemRequest is one line item as sent by clients. preco_unitario omitted
// means "use the product's list price".
type ItemRequest struct {
	ProductID string   `json:"produto_id" binding:"required"`
	Quantity  int      `json:"quantidade" binding:"required,gt=0"`
	UnitPrice *float64 `json:"preco_unitario,omitempty"`
}

func (r ItemRequest) ToCommand() usecase.ItemCommand {
	return usecase.ItemCommand{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

type CreateQuoteRequest struct {
	CustomerID string        `json:"cliente_id" binding:"required"`
	Items      []ItemRequest `json:"itens" binding:"required,min=1,dive"`
	Discount   float64       `json:"desconto" binding:"gte=0"`
	Freight    float64       `json:"frete" binding:"gte=0"`
}

func (r CreateQuoteRequest) ToCommand() usecase.CreateQuoteCommand {
	return usecase.CreateQuoteCommand{
		CustomerID: r.CustomerID,
		Items:      toItemCommands(r.Items),
		Discount:   r.Discount,
		Freight:    r.Freight,
	}
}

// ConvertQuoteRequest finalizes a quote. itens is the edited buffer from the
// conversion dialog and replaces the quote's items.
type ConvertQuoteRequest struct {
	PaymentMethod string        `json:"forma_pagamento" binding:"required"`
	Installments  int           `json:"numero_parcelas" binding:"omitempty,gte=1,lte=24"`
	DueDate       string        `json:"data_vencimento"`
	Discount      float64       `json:"desconto" binding:"gte=0"`
	Freight       float64       `json:"frete" binding:"gte=0"`
	Notes         string        `json:"observacoes"`
	Items         []ItemRequest `json:"itens" binding:"required,min=1,dive"`
}

func (r ConvertQuoteRequest) ToCommand() (usecase.ConvertQuoteCommand, error) {
	dueDate, err := parseDueDate(r.DueDate)
	if err != nil {
		return usecase.ConvertQuoteCommand{}, err
	}
	return usecase.ConvertQuoteCommand{
		PaymentMethod: paymentMethod(r.PaymentMethod),
		Installments:  r.Installments,
		DueDate:       dueDate,
		Discount:      r.Discount,
		Freight:       r.Freight,
		Notes:         r.Notes,
		Items:         toItemCommands(r.Items),
	}, nil
}

// CancelRequest carries the mandatory free-text reason for cancelling a
// quote or sale.
type CancelRequest struct {
	Reason string `json:"motivo" binding:"required"`
}

func toItemCommands(items []ItemRequest) []usecase.ItemCommand {
	out := make([]usecase.ItemCommand, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToCommand())
	}
	return out
}

// parseDueDate accepts "2006-01-02" or RFC 3339; empty means "use the
// default" and yields the zero time.
func parseDueDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDueDate
}
