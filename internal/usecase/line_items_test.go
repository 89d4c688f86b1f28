package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"emilykids_erp/internal/domain/entities"
	mock_interfaces "emilykids_erp/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func float(v float64) *float64 { return &v }

func TestResolveLineItems(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := resolveLineItems(context.Background(), nil, nil, nil)
		if !errors.Is(err, ErrNoItems) {
			t.Fatalf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("blank product id", func(t *testing.T) {
		_, err := resolveLineItems(context.Background(), nil, []ItemCommand{{ProductID: " ", Quantity: 1}}, nil)
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := resolveLineItems(context.Background(), nil, []ItemCommand{{ProductID: "p-1", Quantity: 0}}, nil)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("duplicate product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 10}, nil)

		_, err := resolveLineItems(context.Background(), products, []ItemCommand{
			{ProductID: "p-1", Quantity: 1},
			{ProductID: "p-1", Quantity: 2},
		}, nil)
		if !errors.Is(err, ErrDuplicateItem) {
			t.Fatalf("expected ErrDuplicateItem, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Product{}, nil)

		_, err := resolveLineItems(context.Background(), products, []ItemCommand{{ProductID: "p-9", Quantity: 1}}, nil)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("defaults to list price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "Camiseta", SKU: "CAM-01", Price: 39.9}, nil)

		items, err := resolveLineItems(context.Background(), products, []ItemCommand{{ProductID: "p-1", Quantity: 2}}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items[0].UnitPrice != 39.9 || items[0].Subtotal != 79.8 {
			t.Fatalf("expected price 39.90 subtotal 79.80, got %v / %v", items[0].UnitPrice, items[0].Subtotal)
		}
		if items[0].ProductName != "Camiseta" || items[0].SKU != "CAM-01" {
			t.Fatalf("expected product metadata copied, got %+v", items[0])
		}
	})

	t.Run("price hint wins over list price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 50}, nil)

		items, err := resolveLineItems(context.Background(), products,
			[]ItemCommand{{ProductID: "p-1", Quantity: 1}},
			map[string]float64{"p-1": 45})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items[0].UnitPrice != 45 {
			t.Fatalf("expected hinted price 45, got %v", items[0].UnitPrice)
		}
	})

	t.Run("explicit price wins over hint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 50}, nil)

		items, err := resolveLineItems(context.Background(), products,
			[]ItemCommand{{ProductID: "p-1", Quantity: 1, UnitPrice: float(40)}},
			map[string]float64{"p-1": 45})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items[0].UnitPrice != 40 {
			t.Fatalf("expected explicit price 40, got %v", items[0].UnitPrice)
		}
	})

	t.Run("negative explicit price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 10}, nil)

		_, err := resolveLineItems(context.Background(), products,
			[]ItemCommand{{ProductID: "p-1", Quantity: 1, UnitPrice: float(-1)}}, nil)
		if !errors.Is(err, ErrInvalidUnitPrice) {
			t.Fatalf("expected ErrInvalidUnitPrice, got %v", err)
		}
	})
}

func TestBuildInstallments(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	due := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("single installment", func(t *testing.T) {
		sale := entities.Sale{ID: "v-1", Total: 100, InstallmentsNum: 1, DueDate: due}
		got := buildInstallments(sale, now)
		if len(got) != 1 {
			t.Fatalf("expected 1 installment, got %d", len(got))
		}
		if got[0].Amount != 100 || got[0].Number != 1 || !got[0].DueDate.Equal(due) {
			t.Fatalf("unexpected installment %+v", got[0])
		}
		if got[0].Status != entities.InstallmentStatusPendente {
			t.Fatalf("expected pendente, got %s", got[0].Status)
		}
	})

	t.Run("last installment absorbs remainder", func(t *testing.T) {
		sale := entities.Sale{ID: "v-1", Total: 100, InstallmentsNum: 3, DueDate: due}
		got := buildInstallments(sale, now)
		if len(got) != 3 {
			t.Fatalf("expected 3 installments, got %d", len(got))
		}
		if got[0].Amount != 33.33 || got[1].Amount != 33.33 || got[2].Amount != 33.34 {
			t.Fatalf("unexpected amounts %v %v %v", got[0].Amount, got[1].Amount, got[2].Amount)
		}
		sum := 0.0
		for _, inst := range got {
			sum += inst.Amount
		}
		if roundCents(sum) != 100 {
			t.Fatalf("expected sum 100, got %v", sum)
		}
	})

	t.Run("monthly due dates", func(t *testing.T) {
		sale := entities.Sale{ID: "v-1", Total: 90, InstallmentsNum: 3, DueDate: due}
		got := buildInstallments(sale, now)
		for i, inst := range got {
			want := due.AddDate(0, i, 0)
			if !inst.DueDate.Equal(want) {
				t.Fatalf("installment %d: expected due %s, got %s", i+1, want, inst.DueDate)
			}
			if inst.Number != i+1 || inst.SaleID != "v-1" {
				t.Fatalf("unexpected installment %+v", inst)
			}
		}
	})

	t.Run("even split survives float artifacts", func(t *testing.T) {
		// 2.30*100 is 229.999... in binary; truncating it would make the
		// base 1.14 and push a spurious remainder onto the last installment.
		sale := entities.Sale{ID: "v-1", Total: 2.30, InstallmentsNum: 2, DueDate: due}
		got := buildInstallments(sale, now)
		if len(got) != 2 {
			t.Fatalf("expected 2 installments, got %d", len(got))
		}
		if got[0].Amount != 1.15 || got[1].Amount != 1.15 {
			t.Fatalf("unexpected amounts %v %v", got[0].Amount, got[1].Amount)
		}
	})

	t.Run("zero installments treated as one", func(t *testing.T) {
		sale := entities.Sale{ID: "v-1", Total: 50, InstallmentsNum: 0, DueDate: due}
		got := buildInstallments(sale, now)
		if len(got) != 1 || got[0].Amount != 50 {
			t.Fatalf("expected single installment of 50, got %+v", got)
		}
	})
}

func TestValidPaymentMethod(t *testing.T) {
	valid := []entities.PaymentMethod{
		entities.PaymentMethodDinheiro,
		entities.PaymentMethodPix,
		entities.PaymentMethodCartao,
		entities.PaymentMethodCrediario,
	}
	for _, m := range valid {
		if !validPaymentMethod(m) {
			t.Fatalf("expected %s to be valid", m)
		}
	}
	if validPaymentMethod("cheque") {
		t.Fatal("expected cheque to be invalid")
	}
}
