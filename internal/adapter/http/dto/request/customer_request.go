package request

import "emilykids_erp/internal/usecase"

type CreateCustomerRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"telefone"`
	Document string `json:"documento"`
}

func (r CreateCustomerRequest) ToCommand() usecase.CreateCustomerCommand {
	return usecase.CreateCustomerCommand{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Document: r.Document,
	}
}
