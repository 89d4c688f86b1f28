package usecase

import (
	"context"
	"errors"
	"testing"

	"emilykids_erp/internal/domain/entities"
	mock_interfaces "emilykids_erp/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), CreateCustomerCommand{Name: "  "})
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("creates with trimmed fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" {
					t.Fatal("expected a generated id")
				}
				if c.Name != "Maria Souza" || c.Email != "maria@example.com" {
					t.Fatalf("unexpected customer %+v", c)
				}
				return c, nil
			})

		created, err := uc.Create(context.Background(), CreateCustomerCommand{
			Name:  "  Maria Souza ",
			Email: " maria@example.com ",
			Phone: "11 99999-0000",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Phone != "11 99999-0000" {
			t.Fatalf("unexpected phone %q", created.Phone)
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Customer{}, nil)

		_, err := uc.GetByID(context.Background(), "c-9")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", Name: "Maria"}, nil)

		c, err := uc.GetByID(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Maria" {
			t.Fatalf("unexpected customer %+v", c)
		}
	})
}
