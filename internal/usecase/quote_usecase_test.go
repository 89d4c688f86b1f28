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

type quoteMocks struct {
	quotes      *mock_interfaces.MockIQuoteRepository
	sales       *mock_interfaces.MockISaleRepository
	products    *mock_interfaces.MockIProductRepository
	customers   *mock_interfaces.MockICustomerRepository
	receivables *mock_interfaces.MockIReceivableRepository
	events      *mock_interfaces.MockIEventPublisher
}

func newQuoteUseCaseWithMocks(ctrl *gomock.Controller) (*QuoteUseCase, quoteMocks) {
	m := quoteMocks{
		quotes:      mock_interfaces.NewMockIQuoteRepository(ctrl),
		sales:       mock_interfaces.NewMockISaleRepository(ctrl),
		products:    mock_interfaces.NewMockIProductRepository(ctrl),
		customers:   mock_interfaces.NewMockICustomerRepository(ctrl),
		receivables: mock_interfaces.NewMockIReceivableRepository(ctrl),
		events:      mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	uc := NewQuoteUseCase(m.quotes, m.sales, m.products, m.customers, m.receivables, m.events)
	return uc, m
}

func TestQuoteUseCase_Create_Validations(t *testing.T) {
	t.Run("empty customer id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateQuoteCommand{CustomerID: "  "})
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("negative discount", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateQuoteCommand{CustomerID: "c-1", Discount: -1})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateQuoteCommand{CustomerID: "c-1"})
		if !errors.Is(err, ErrNoItems) {
			t.Fatalf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 10}, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Customer{}, nil)

		_, err := uc.Create(context.Background(), CreateQuoteCommand{
			CustomerID: "c-9",
			Items:      []ItemCommand{{ProductID: "p-1", Quantity: 1}},
		})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("success reserves stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "Vestido", Price: 80}, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		m.products.EXPECT().Reserve(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				return q, nil
			})

		quote, err := uc.Create(context.Background(), CreateQuoteCommand{
			CustomerID: "c-1",
			Items:      []ItemCommand{{ProductID: "p-1", Quantity: 2}},
			Discount:   10,
			Freight:    5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Status != entities.QuoteStatusAberto {
			t.Fatalf("expected aberto, got %s", quote.Status)
		}
		if quote.Total != 155 {
			t.Fatalf("expected total 155, got %.2f", quote.Total)
		}
	})

	t.Run("reservation failure releases earlier reservations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 10}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.Product{ID: "p-2", Price: 20}, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)

		m.products.EXPECT().Reserve(gomock.Any(), "p-1", 1).Return(entities.Product{ID: "p-1"}, nil)
		// Conditional update lost: zero value means insufficient stock.
		m.products.EXPECT().Reserve(gomock.Any(), "p-2", 5).Return(entities.Product{}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.Product{ID: "p-2", Name: "Tenis", Available: 2, Reserved: 3}, nil)
		m.products.EXPECT().Release(gomock.Any(), "p-1", 1).Return(entities.Product{ID: "p-1"}, nil)

		_, err := uc.Create(context.Background(), CreateQuoteCommand{
			CustomerID: "c-1",
			Items: []ItemCommand{
				{ProductID: "p-1", Quantity: 1},
				{ProductID: "p-2", Quantity: 5},
			},
		})
		if !errors.Is(err, ErrStockUnavailable) {
			t.Fatalf("expected ErrStockUnavailable, got %v", err)
		}
		var stockErr *StockUnavailableError
		if !errors.As(err, &stockErr) {
			t.Fatalf("expected StockUnavailableError, got %T", err)
		}
		if stockErr.Availability.QuantityAvailable != 2 || stockErr.Availability.QuantityReserved != 3 {
			t.Fatalf("unexpected availability snapshot %+v", stockErr.Availability)
		}
	})

	t.Run("persistence failure releases reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 10}, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		m.products.EXPECT().Reserve(gomock.Any(), "p-1", 1).Return(entities.Product{ID: "p-1"}, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("ddb down"))
		m.products.EXPECT().Release(gomock.Any(), "p-1", 1).Return(entities.Product{ID: "p-1"}, nil)

		_, err := uc.Create(context.Background(), CreateQuoteCommand{
			CustomerID: "c-1",
			Items:      []ItemCommand{{ProductID: "p-1", Quantity: 1}},
		})
		if err == nil || err.Error() != "ddb down" {
			t.Fatalf("expected ddb down, got %v", err)
		}
	})
}

func TestQuoteUseCase_ConvertToSale_Validations(t *testing.T) {
	t.Run("empty quote id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.ConvertToSale(context.Background(), " ", ConvertQuoteCommand{PaymentMethod: entities.PaymentMethodPix})
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("payment method unset blocks conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newQuoteUseCaseWithMocks(ctrl)

		// No repository expectations: the conversion must not start.
		_, err := uc.ConvertToSale(context.Background(), "q-1", ConvertQuoteCommand{})
		if !errors.Is(err, ErrPaymentMethodRequired) {
			t.Fatalf("expected ErrPaymentMethodRequired, got %v", err)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.ConvertToSale(context.Background(), "q-1", ConvertQuoteCommand{PaymentMethod: "cheque"})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("quote not open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusCancelado}, nil)

		_, err := uc.ConvertToSale(context.Background(), "q-1", ConvertQuoteCommand{
			PaymentMethod: entities.PaymentMethodPix,
			Items:         []ItemCommand{{ProductID: "p-1", Quantity: 1}},
		})
		if !errors.Is(err, ErrQuoteNotOpen) {
			t.Fatalf("expected ErrQuoteNotOpen, got %v", err)
		}
	})
}

func TestQuoteUseCase_ConvertToSale(t *testing.T) {
	openQuote := entities.Quote{
		ID:         "q-1",
		CustomerID: "c-1",
		Status:     entities.QuoteStatusAberto,
		Items: []entities.LineItem{
			{ProductID: "p-1", Quantity: 2, UnitPrice: 45, Subtotal: 90},
		},
	}

	t.Run("cash payment forces single installment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(openQuote, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 50}, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAberto, entities.QuoteStatusConvertido, "").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusConvertido}, nil)
		m.products.EXPECT().Release(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.products.EXPECT().Deduct(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.sales.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale) (entities.Sale, error) {
				return s, nil
			})
		m.receivables.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, installments []entities.Installment) error {
				if len(installments) != 1 {
					t.Fatalf("expected 1 installment for cash, got %d", len(installments))
				}
				return nil
			})
		m.events.EXPECT().PublishSaleEvent(gomock.Any(), "venda.finalizada", gomock.Any()).Return(nil)

		sale, err := uc.ConvertToSale(context.Background(), "q-1", ConvertQuoteCommand{
			PaymentMethod: entities.PaymentMethodDinheiro,
			Installments:  6,
			Items:         []ItemCommand{{ProductID: "p-1", Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.InstallmentsNum != 1 {
			t.Fatalf("expected 1 installment, got %d", sale.InstallmentsNum)
		}
		if sale.QuoteID != "q-1" || sale.CustomerID != "c-1" {
			t.Fatalf("unexpected sale linkage %+v", sale)
		}
		// Price comes from the quote, not the current list price.
		if sale.Items[0].UnitPrice != 45 {
			t.Fatalf("expected quoted price 45, got %v", sale.Items[0].UnitPrice)
		}
	})

	t.Run("crediario keeps requested installments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		due := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(openQuote, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 50}, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAberto, entities.QuoteStatusConvertido, "").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusConvertido}, nil)
		m.products.EXPECT().Release(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.products.EXPECT().Deduct(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.sales.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale) (entities.Sale, error) {
				return s, nil
			})
		m.receivables.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, installments []entities.Installment) error {
				if len(installments) != 3 {
					t.Fatalf("expected 3 installments, got %d", len(installments))
				}
				sum := 0.0
				for _, inst := range installments {
					sum += inst.Amount
				}
				if roundCents(sum) != 90 {
					t.Fatalf("expected installments to sum 90, got %v", sum)
				}
				return nil
			})
		m.events.EXPECT().PublishSaleEvent(gomock.Any(), "venda.finalizada", gomock.Any()).Return(nil)

		sale, err := uc.ConvertToSale(context.Background(), "q-1", ConvertQuoteCommand{
			PaymentMethod: entities.PaymentMethodCrediario,
			Installments:  3,
			DueDate:       due,
			Items:         []ItemCommand{{ProductID: "p-1", Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.InstallmentsNum != 3 || !sale.DueDate.Equal(due) {
			t.Fatalf("unexpected sale %+v", sale)
		}
	})

	t.Run("lost claim means another writer won", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(openQuote, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 50}, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAberto, entities.QuoteStatusConvertido, "").
			Return(entities.Quote{}, nil)

		_, err := uc.ConvertToSale(context.Background(), "q-1", ConvertQuoteCommand{
			PaymentMethod: entities.PaymentMethodPix,
			Items:         []ItemCommand{{ProductID: "p-1", Quantity: 2}},
		})
		if !errors.Is(err, ErrQuoteNotOpen) {
			t.Fatalf("expected ErrQuoteNotOpen, got %v", err)
		}
	})

	t.Run("deduct failure reverts claim and restores reservations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(openQuote, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 50}, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAberto, entities.QuoteStatusConvertido, "").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusConvertido}, nil)
		m.products.EXPECT().Release(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.products.EXPECT().Deduct(gomock.Any(), "p-1", 3).Return(entities.Product{}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "Vestido", Available: 2}, nil)
		m.products.EXPECT().Reserve(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusConvertido, entities.QuoteStatusAberto, "").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAberto}, nil)

		_, err := uc.ConvertToSale(context.Background(), "q-1", ConvertQuoteCommand{
			PaymentMethod: entities.PaymentMethodPix,
			Items:         []ItemCommand{{ProductID: "p-1", Quantity: 3}},
		})
		if !errors.Is(err, ErrStockUnavailable) {
			t.Fatalf("expected ErrStockUnavailable, got %v", err)
		}
	})

	t.Run("installment creation failure voids the sale and rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		batchErr := errors.New("installments store down")
		var createdSaleID string

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(openQuote, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Price: 50}, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAberto, entities.QuoteStatusConvertido, "").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusConvertido}, nil)
		m.products.EXPECT().Release(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.products.EXPECT().Deduct(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.sales.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale) (entities.Sale, error) {
				createdSaleID = s.ID
				return s, nil
			})
		m.receivables.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(batchErr)
		m.sales.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id, reason string) (entities.Sale, error) {
				if id != createdSaleID {
					t.Fatalf("expected void of sale %s, got %s", createdSaleID, id)
				}
				if reason == "" {
					t.Fatal("expected a void reason")
				}
				return entities.Sale{ID: id}, nil
			})
		m.products.EXPECT().Adjust(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.products.EXPECT().Reserve(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusConvertido, entities.QuoteStatusAberto, "").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAberto}, nil)

		_, err := uc.ConvertToSale(context.Background(), "q-1", ConvertQuoteCommand{
			PaymentMethod: entities.PaymentMethodPix,
			Items:         []ItemCommand{{ProductID: "p-1", Quantity: 2}},
		})
		if !errors.Is(err, batchErr) {
			t.Fatalf("expected the batch error, got %v", err)
		}
	})
}

func TestQuoteUseCase_CancelAndReturn(t *testing.T) {
	t.Run("cancel requires reason", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Cancel(context.Background(), "q-1", "  ")
		if !errors.Is(err, ErrCancelReasonRequired) {
			t.Fatalf("expected ErrCancelReasonRequired, got %v", err)
		}
	})

	t.Run("cancel releases reservations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		cancelled := entities.Quote{
			ID:     "q-1",
			Status: entities.QuoteStatusCancelado,
			Items:  []entities.LineItem{{ProductID: "p-1", Quantity: 2}},
		}
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAberto, entities.QuoteStatusCancelado, "cliente desistiu").
			Return(cancelled, nil)
		m.products.EXPECT().Release(gomock.Any(), "p-1", 2).Return(entities.Product{ID: "p-1"}, nil)

		quote, err := uc.Cancel(context.Background(), "q-1", "cliente desistiu")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Status != entities.QuoteStatusCancelado {
			t.Fatalf("expected cancelado, got %s", quote.Status)
		}
	})

	t.Run("return to stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		returned := entities.Quote{
			ID:     "q-1",
			Status: entities.QuoteStatusRetornado,
			Items:  []entities.LineItem{{ProductID: "p-1", Quantity: 1}},
		}
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAberto, entities.QuoteStatusRetornado, "").
			Return(returned, nil)
		m.products.EXPECT().Release(gomock.Any(), "p-1", 1).Return(entities.Product{ID: "p-1"}, nil)

		quote, err := uc.ReturnToStock(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Status != entities.QuoteStatusRetornado {
			t.Fatalf("expected retornado, got %s", quote.Status)
		}
	})

	t.Run("close on missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-9", entities.QuoteStatusAberto, entities.QuoteStatusRetornado, "").
			Return(entities.Quote{}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)

		_, err := uc.ReturnToStock(context.Background(), "q-9")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("close on already converted quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAberto, entities.QuoteStatusCancelado, "x").
			Return(entities.Quote{}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusConvertido}, nil)

		_, err := uc.Cancel(context.Background(), "q-1", "x")
		if !errors.Is(err, ErrQuoteNotOpen) {
			t.Fatalf("expected ErrQuoteNotOpen, got %v", err)
		}
	})
}
