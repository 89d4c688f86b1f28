package request

import "emilykids_erp/internal/usecase"

// PayInstallmentRequest settles one conta a receber. email_pagador is only
// meaningful for card payments routed through the gateway.
type PayInstallmentRequest struct {
	PaymentMethod string `json:"forma_pagamento" binding:"required"`
	PayerEmail    string `json:"email_pagador" binding:"omitempty,email"`
}

func (r PayInstallmentRequest) ToCommand() usecase.PayInstallmentCommand {
	return usecase.PayInstallmentCommand{
		PaymentMethod: paymentMethod(r.PaymentMethod),
		PayerEmail:    r.PayerEmail,
	}
}
