package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"emilykids_erp/internal/domain/entities"
	"emilykids_erp/internal/usecase/interfaces"
)

var (
	ErrInvalidInstallmentID     = errors.New("invalid conta a receber id")
	ErrInstallmentNotFound      = errors.New("installment not found")
	ErrInstallmentAlreadyPaid   = errors.New("installment already paid")
	ErrInstallmentCancelled     = errors.New("installment cancelled")
	ErrPaymentGatewayFailed     = errors.New("payment gateway failed")
	ErrGatewayNotConfigured     = errors.New("payment gateway not configured")
	ErrInstallmentStatusChanged = errors.New("installment status changed")
)

// PayInstallmentCommand settles one conta a receber. Card payments go
// through the external gateway; cash/pix are recorded directly.
type PayInstallmentCommand struct {
	PaymentMethod entities.PaymentMethod
	PayerEmail    string
}

// IReceivableUseCase exposes accounts-receivable operations.

type IReceivableUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Installment, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.Installment, error)
	Pay(ctx context.Context, id string, cmd PayInstallmentCommand) (entities.Installment, error)
}

type ReceivableUseCase struct {
	receivables interfaces.IReceivableRepository
	gateway     interfaces.IPaymentGateway
}

var _ IReceivableUseCase = (*ReceivableUseCase)(nil)

func NewReceivableUseCase(receivables interfaces.IReceivableRepository, gateway interfaces.IPaymentGateway) *ReceivableUseCase {
	return &ReceivableUseCase{receivables: receivables, gateway: gateway}
}

func (u *ReceivableUseCase) GetByID(ctx context.Context, id string) (entities.Installment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Installment{}, ErrInvalidInstallmentID
	}

	inst, err := u.receivables.GetByID(ctx, id)
	if err != nil {
		return entities.Installment{}, err
	}
	if inst.ID == "" {
		return entities.Installment{}, ErrInstallmentNotFound
	}
	return inst, nil
}

func (u *ReceivableUseCase) ListBySaleID(ctx context.Context, saleID string) ([]entities.Installment, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return nil, ErrInvalidSaleID
	}
	return u.receivables.ListBySaleID(ctx, saleID)
}

func (u *ReceivableUseCase) Pay(ctx context.Context, id string, cmd PayInstallmentCommand) (entities.Installment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Installment{}, ErrInvalidInstallmentID
	}
	if cmd.PaymentMethod == "" {
		return entities.Installment{}, ErrPaymentMethodRequired
	}
	if !validPaymentMethod(cmd.PaymentMethod) {
		return entities.Installment{}, ErrInvalidPaymentMethod
	}

	inst, err := u.receivables.GetByID(ctx, id)
	if err != nil {
		return entities.Installment{}, err
	}
	switch {
	case inst.ID == "":
		return entities.Installment{}, ErrInstallmentNotFound
	case inst.Status == entities.InstallmentStatusPago:
		return entities.Installment{}, ErrInstallmentAlreadyPaid
	case inst.Status == entities.InstallmentStatusCancelado:
		return entities.Installment{}, ErrInstallmentCancelled
	}

	if cmd.PaymentMethod == entities.PaymentMethodCartao {
		if u.gateway == nil {
			return entities.Installment{}, ErrGatewayNotConfigured
		}
		providerID, providerStatus, err := u.gateway.CreatePayment(ctx, interfaces.PaymentRequest{
			Amount:            inst.Amount,
			Description:       fmt.Sprintf("Parcela %d da venda %s", inst.Number, inst.SaleID),
			ExternalReference: inst.ID,
			PaymentMethodID:   string(cmd.PaymentMethod),
			PayerEmail:        strings.TrimSpace(cmd.PayerEmail),
			Installments:      1,
			IdempotencyKey:    inst.ID,
		})
		if err != nil {
			log.Printf("[receber][usecase] gateway payment failed conta_id=%s err=%v", id, err)
			return entities.Installment{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
		}
		log.Printf("[receber][usecase] gateway payment ok conta_id=%s provider_payment_id=%s provider_status=%s", id, providerID, providerStatus)
	}

	paid, err := u.receivables.MarkPaid(ctx, id)
	if err != nil {
		return entities.Installment{}, err
	}
	if paid.ID == "" {
		return entities.Installment{}, ErrInstallmentStatusChanged
	}
	log.Printf("[receber][usecase] paid conta_id=%s venda_id=%s valor=%.2f", paid.ID, paid.SaleID, paid.Amount)
	return paid, nil
}
