package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - The sales-service is the source of truth for quote/sale state.
//   - A quote leaves "aberto" exactly once: conversion, return-to-stock or
//     cancellation. There is no path back.

type QuoteStatus string

const (
	QuoteStatusAberto     QuoteStatus = "aberto"
	QuoteStatusConvertido QuoteStatus = "convertido"
	QuoteStatusRetornado  QuoteStatus = "retornado"
	QuoteStatusCancelado  QuoteStatus = "cancelado"
)

// Quote is the quote (orçamento) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// While a quote is "aberto", every line item quantity is held as reserved
// stock on its product (estoque reservado).
type Quote struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"cliente_id"`
	Items        []LineItem  `json:"itens"`
	Discount     float64     `json:"desconto"`
	Freight      float64     `json:"frete"`
	Total        float64     `json:"total"`
	Status       QuoteStatus `json:"status"`
	CancelReason string      `json:"motivo_cancelamento,omitempty"`
	CancelledAt  *time.Time  `json:"cancelado_em,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
