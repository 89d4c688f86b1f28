package request

import (
	"emilykids_erp/internal/domain/entities"
	"emilykids_erp/internal/usecase"
)

type CreateSaleRequest struct {
	CustomerID    string        `json:"cliente_id" binding:"required"`
	Items         []ItemRequest `json:"itens" binding:"required,min=1,dive"`
	Discount      float64       `json:"desconto" binding:"gte=0"`
	Freight       float64       `json:"frete" binding:"gte=0"`
	PaymentMethod string        `json:"forma_pagamento" binding:"required"`
	Installments  int           `json:"numero_parcelas" binding:"omitempty,gte=1,lte=24"`
	DueDate       string        `json:"data_vencimento"`
	Notes         string        `json:"observacoes"`
}

func (r CreateSaleRequest) ToCommand() (usecase.CreateSaleCommand, error) {
	dueDate, err := parseDueDate(r.DueDate)
	if err != nil {
		return usecase.CreateSaleCommand{}, err
	}
	return usecase.CreateSaleCommand{
		CustomerID:    r.CustomerID,
		Items:         toItemCommands(r.Items),
		Discount:      r.Discount,
		Freight:       r.Freight,
		PaymentMethod: paymentMethod(r.PaymentMethod),
		Installments:  r.Installments,
		DueDate:       dueDate,
		Notes:         r.Notes,
	}, nil
}

func paymentMethod(s string) entities.PaymentMethod {
	return entities.PaymentMethod(s)
}
