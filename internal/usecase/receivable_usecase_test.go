package usecase

import (
	"context"
	"errors"
	"testing"

	"emilykids_erp/internal/domain/entities"
	"emilykids_erp/internal/usecase/interfaces"
	mock_interfaces "emilykids_erp/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReceivableUseCase_Pay_Validations(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewReceivableUseCase(nil, nil)
		_, err := uc.Pay(context.Background(), " ", PayInstallmentCommand{PaymentMethod: entities.PaymentMethodPix})
		if !errors.Is(err, ErrInvalidInstallmentID) {
			t.Fatalf("expected ErrInvalidInstallmentID, got %v", err)
		}
	})

	t.Run("payment method required", func(t *testing.T) {
		uc := NewReceivableUseCase(nil, nil)
		_, err := uc.Pay(context.Background(), "cr-1", PayInstallmentCommand{})
		if !errors.Is(err, ErrPaymentMethodRequired) {
			t.Fatalf("expected ErrPaymentMethodRequired, got %v", err)
		}
	})

	t.Run("invalid payment method", func(t *testing.T) {
		uc := NewReceivableUseCase(nil, nil)
		_, err := uc.Pay(context.Background(), "cr-1", PayInstallmentCommand{PaymentMethod: "boleto"})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})
}

func TestReceivableUseCase_Pay(t *testing.T) {
	pending := entities.Installment{ID: "cr-1", SaleID: "v-1", Number: 1, Amount: 33.33, Status: entities.InstallmentStatusPendente}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cr-9").Return(entities.Installment{}, nil)

		uc := NewReceivableUseCase(repo, nil)
		_, err := uc.Pay(context.Background(), "cr-9", PayInstallmentCommand{PaymentMethod: entities.PaymentMethodPix})
		if !errors.Is(err, ErrInstallmentNotFound) {
			t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(entities.Installment{ID: "cr-1", Status: entities.InstallmentStatusPago}, nil)

		uc := NewReceivableUseCase(repo, nil)
		_, err := uc.Pay(context.Background(), "cr-1", PayInstallmentCommand{PaymentMethod: entities.PaymentMethodPix})
		if !errors.Is(err, ErrInstallmentAlreadyPaid) {
			t.Fatalf("expected ErrInstallmentAlreadyPaid, got %v", err)
		}
	})

	t.Run("cancelled installment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(entities.Installment{ID: "cr-1", Status: entities.InstallmentStatusCancelado}, nil)

		uc := NewReceivableUseCase(repo, nil)
		_, err := uc.Pay(context.Background(), "cr-1", PayInstallmentCommand{PaymentMethod: entities.PaymentMethodPix})
		if !errors.Is(err, ErrInstallmentCancelled) {
			t.Fatalf("expected ErrInstallmentCancelled, got %v", err)
		}
	})

	t.Run("cash skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(pending, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "cr-1").Return(entities.Installment{ID: "cr-1", Status: entities.InstallmentStatusPago}, nil)

		uc := NewReceivableUseCase(repo, gateway)
		paid, err := uc.Pay(context.Background(), "cr-1", PayInstallmentCommand{PaymentMethod: entities.PaymentMethodDinheiro})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if paid.Status != entities.InstallmentStatusPago {
			t.Fatalf("expected pago, got %s", paid.Status)
		}
	})

	t.Run("card charges the gateway first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(pending, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.PaymentRequest) (string, string, error) {
				if req.Amount != 33.33 || req.ExternalReference != "cr-1" {
					t.Fatalf("unexpected gateway request %+v", req)
				}
				// The installment id keys the charge so a concurrent or
				// retried Pay cannot bill the card twice.
				if req.IdempotencyKey != "cr-1" {
					t.Fatalf("expected idempotency key cr-1, got %q", req.IdempotencyKey)
				}
				return "mp-123", "approved", nil
			})
		repo.EXPECT().MarkPaid(gomock.Any(), "cr-1").Return(entities.Installment{ID: "cr-1", Status: entities.InstallmentStatusPago}, nil)

		uc := NewReceivableUseCase(repo, gateway)
		_, err := uc.Pay(context.Background(), "cr-1", PayInstallmentCommand{
			PaymentMethod: entities.PaymentMethodCartao,
			PayerEmail:    "mae@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("card without gateway configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(pending, nil)

		uc := NewReceivableUseCase(repo, nil)
		_, err := uc.Pay(context.Background(), "cr-1", PayInstallmentCommand{PaymentMethod: entities.PaymentMethodCartao})
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("gateway failure keeps installment pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(pending, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", errors.New("mp timeout"))

		uc := NewReceivableUseCase(repo, gateway)
		_, err := uc.Pay(context.Background(), "cr-1", PayInstallmentCommand{PaymentMethod: entities.PaymentMethodCartao})
		if !errors.Is(err, ErrPaymentGatewayFailed) {
			t.Fatalf("expected ErrPaymentGatewayFailed, got %v", err)
		}
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(pending, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "cr-1").Return(entities.Installment{}, nil)

		uc := NewReceivableUseCase(repo, nil)
		_, err := uc.Pay(context.Background(), "cr-1", PayInstallmentCommand{PaymentMethod: entities.PaymentMethodPix})
		if !errors.Is(err, ErrInstallmentStatusChanged) {
			t.Fatalf("expected ErrInstallmentStatusChanged, got %v", err)
		}
	})
}

func TestReceivableUseCase_ListBySaleID(t *testing.T) {
	t.Run("empty sale id", func(t *testing.T) {
		uc := NewReceivableUseCase(nil, nil)
		_, err := uc.ListBySaleID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSaleID) {
			t.Fatalf("expected ErrInvalidSaleID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		repo.EXPECT().ListBySaleID(gomock.Any(), "v-1").Return([]entities.Installment{{ID: "cr-1"}, {ID: "cr-2"}}, nil)

		uc := NewReceivableUseCase(repo, nil)
		got, err := uc.ListBySaleID(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 installments, got %d", len(got))
		}
	})
}
