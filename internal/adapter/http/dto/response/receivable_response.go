package response

import (
	"time"

	"emilykids_erp/internal/domain/entities"
)

type InstallmentResponse struct {
	ID        string     `json:"id"`
	SaleID    string     `json:"venda_id"`
	Number    int        `json:"numero"`
	Amount    float64    `json:"valor"`
	DueDate   time.Time  `json:"data_vencimento"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"pago_em,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromInstallment(i entities.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:        i.ID,
		SaleID:    i.SaleID,
		Number:    i.Number,
		Amount:    i.Amount,
		DueDate:   i.DueDate,
		Status:    string(i.Status),
		PaidAt:    i.PaidAt,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func FromInstallments(installments []entities.Installment) []InstallmentResponse {
	out := make([]InstallmentResponse, 0, len(installments))
	for _, i := range installments {
		out = append(out, FromInstallment(i))
	}
	return out
}
