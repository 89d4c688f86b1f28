package interfaces

import "context"

// PaymentRequest is the typed command sent to the external payment provider
// when an installment is settled by card. IdempotencyKey dedupes retries of
// the same charge at the provider.
type PaymentRequest struct {
	Amount            float64
	Description       string
	ExternalReference string
	PaymentMethodID   string
	PayerEmail        string
	Installments      int
	IdempotencyKey    string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (providerPaymentID string, providerStatus string, err error)
}
