package request

import (
	"errors"
	"testing"
	"time"
)

func TestParseDueDate(t *testing.T) {
	t.Run("date only", func(t *testing.T) {
		got, err := parseDueDate("2026-09-10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := parseDueDate("2026-09-10T15:04:05-03:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 9, 10, 18, 4, 5, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("empty means default", func(t *testing.T) {
		got, err := parseDueDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsZero() {
			t.Fatalf("expected zero time, got %v", got)
		}
	})

	t.Run("rejects other formats", func(t *testing.T) {
		_, err := parseDueDate("10/04/2024")
		if !errors.Is(err, ErrInvalidDueDate) {
			t.Fatalf("expected ErrInvalidDueDate, got %v", err)
		}
	})
}

func TestConvertQuoteRequestToCommand(t *testing.T) {
	t.Run("bad due date aborts conversion", func(t *testing.T) {
		req := ConvertQuoteRequest{
			PaymentMethod: "pix",
			DueDate:       "amanha",
			Items:         []ItemRequest{{ProductID: "p-1", Quantity: 1}},
		}
		_, err := req.ToCommand()
		if !errors.Is(err, ErrInvalidDueDate) {
			t.Fatalf("expected ErrInvalidDueDate, got %v", err)
		}
	})

	t.Run("maps fields", func(t *testing.T) {
		price := 19.9
		req := ConvertQuoteRequest{
			PaymentMethod: "crediario",
			Installments:  3,
			DueDate:       "2026-10-01",
			Discount:      5,
			Freight:       8,
			Items:         []ItemRequest{{ProductID: "p-1", Quantity: 2, UnitPrice: &price}},
		}
		cmd, err := req.ToCommand()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(cmd.PaymentMethod) != "crediario" || cmd.Installments != 3 {
			t.Fatalf("unexpected command %+v", cmd)
		}
		if len(cmd.Items) != 1 || cmd.Items[0].ProductID != "p-1" || *cmd.Items[0].UnitPrice != 19.9 {
			t.Fatalf("unexpected items %+v", cmd.Items)
		}
	})
}
