package entities

import "time"

// InstallmentStatus represents the payment state of a conta a receber.

type InstallmentStatus string

const (
	InstallmentStatusPendente  InstallmentStatus = "pendente"
	InstallmentStatusPago      InstallmentStatus = "pago"
	InstallmentStatusCancelado InstallmentStatus = "cancelado"
)

// Installment is one accounts-receivable installment (conta a receber)
// generated when a sale is finalized.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (venda_id-index): venda_id
//
// The set of installments for a sale always sums exactly to the sale total;
// the last installment absorbs the rounding remainder.
type Installment struct {
	ID        string            `json:"id"`
	SaleID    string            `json:"venda_id"`
	Number    int               `json:"numero"`
	Amount    float64           `json:"valor"`
	DueDate   time.Time         `json:"data_vencimento"`
	Status    InstallmentStatus `json:"status"`
	PaidAt    *time.Time        `json:"pago_em,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
