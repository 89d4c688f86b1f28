package entities

import "time"

// PaymentMethod is the forma de pagamento of a sale or installment payment.

type PaymentMethod string

const (
	PaymentMethodDinheiro  PaymentMethod = "dinheiro"
	PaymentMethodPix       PaymentMethod = "pix"
	PaymentMethodCartao    PaymentMethod = "cartao"
	PaymentMethodCrediario PaymentMethod = "crediario"
)

// IsCash reports whether the payment method settles in a single installment.
func (m PaymentMethod) IsCash() bool {
	return m == PaymentMethodDinheiro || m == PaymentMethodPix
}

// Sale is the finalized sale (venda) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Cancellation is a flag + reason + timestamp rather than a status value:
// a cancelled sale keeps its payment data and its (now cancelled)
// receivable installments.
type Sale struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"cliente_id"`
	QuoteID         string        `json:"orcamento_id,omitempty"`
	Items           []LineItem    `json:"itens"`
	Discount        float64       `json:"desconto"`
	Freight         float64       `json:"frete"`
	Total           float64       `json:"total"`
	PaymentMethod   PaymentMethod `json:"forma_pagamento"`
	InstallmentsNum int           `json:"numero_parcelas"`
	DueDate         time.Time     `json:"data_vencimento"`
	Notes           string        `json:"observacoes,omitempty"`
	Cancelled       bool          `json:"cancelada"`
	CancelReason    string        `json:"motivo_cancelamento,omitempty"`
	CancelledAt     *time.Time    `json:"cancelada_em,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
