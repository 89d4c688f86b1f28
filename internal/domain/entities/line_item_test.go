package entities

import "testing"

func TestLineSubtotal(t *testing.T) {
	t.Run("quantity times price", func(t *testing.T) {
		it := LineItem{Quantity: 3, UnitPrice: 19.9}
		if got := it.LineSubtotal(); got != 59.7 {
			t.Fatalf("expected 59.70, got %.2f", got)
		}
	})

	t.Run("rounds to cents", func(t *testing.T) {
		it := LineItem{Quantity: 3, UnitPrice: 0.125}
		if got := it.LineSubtotal(); got != 0.38 {
			t.Fatalf("expected 0.38, got %v", got)
		}
	})
}

func TestComputeTotal(t *testing.T) {
	t.Run("sum minus discount plus freight", func(t *testing.T) {
		items := []LineItem{
			{Quantity: 2, UnitPrice: 10},
		}
		if got := ComputeTotal(items, 5, 3); got != 18 {
			t.Fatalf("expected 18, got %.2f", got)
		}
	})

	t.Run("multiple items", func(t *testing.T) {
		items := []LineItem{
			{Quantity: 1, UnitPrice: 49.9},
			{Quantity: 2, UnitPrice: 25.05},
		}
		if got := ComputeTotal(items, 0, 0); got != 100 {
			t.Fatalf("expected 100, got %.2f", got)
		}
	})

	t.Run("no items yields discount and freight only", func(t *testing.T) {
		if got := ComputeTotal(nil, 2, 7); got != 5 {
			t.Fatalf("expected 5, got %.2f", got)
		}
	})

	t.Run("pure across calls", func(t *testing.T) {
		items := []LineItem{{Quantity: 4, UnitPrice: 2.5}}
		first := ComputeTotal(items, 1, 0)
		second := ComputeTotal(items, 1, 0)
		if first != second || first != 9 {
			t.Fatalf("expected stable 9, got %v then %v", first, second)
		}
	})
}
