package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"emilykids_erp/internal/domain/entities"
	mock_interfaces "emilykids_erp/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStockUseCase_CheckAvailability(t *testing.T) {
	t.Run("empty product id", func(t *testing.T) {
		uc := NewStockUseCase(nil)
		_, err := uc.CheckAvailability(context.Background(), " ", 1)
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		uc := NewStockUseCase(nil)
		_, err := uc.CheckAvailability(context.Background(), "p-1", 0)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Product{}, nil)

		uc := NewStockUseCase(products)
		_, err := uc.CheckAvailability(context.Background(), "p-9", 1)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Available: 10, Reserved: 2}, nil)

		uc := NewStockUseCase(products)
		got, err := uc.CheckAvailability(context.Background(), "p-1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Available || got.QuantityAvailable != 10 || got.QuantityReserved != 2 {
			t.Fatalf("unexpected availability %+v", got)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "Sapato", Available: 3, Reserved: 4}, nil)

		uc := NewStockUseCase(products)
		got, err := uc.CheckAvailability(context.Background(), "p-1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Available {
			t.Fatal("expected unavailable")
		}
		if !strings.Contains(got.Message, "Sapato") || !strings.Contains(got.Message, "solicitado 5") {
			t.Fatalf("unexpected message %q", got.Message)
		}
	})

	t.Run("boundary quantity equals available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Available: 5}, nil)

		uc := NewStockUseCase(products)
		got, err := uc.CheckAvailability(context.Background(), "p-1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Available {
			t.Fatal("expected exactly-available stock to be available")
		}
	})
}
