package entities

import "math"

// LineItem is a single product line inside a quote or sale.
//
// Invariants (enforced by the use cases before persistence):
//   - Quantity > 0
//   - UnitPrice >= 0
//   - ProductID unique within one quote/sale
type LineItem struct {
	ProductID   string  `json:"produto_id"`
	ProductName string  `json:"produto_nome,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	Quantity    int     `json:"quantidade"`
	UnitPrice   float64 `json:"preco_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

// LineSubtotal returns quantity x unit price rounded to cents.
func (i LineItem) LineSubtotal() float64 {
	return roundCents(float64(i.Quantity) * i.UnitPrice)
}

// ComputeTotal returns sum(subtotal) - discount + freight for a buffer of
// line items. Pure; safe to recompute on every call.
func ComputeTotal(items []LineItem, discount, freight float64) float64 {
	sum := 0.0
	for _, it := range items {
		sum += it.LineSubtotal()
	}
	return roundCents(sum - discount + freight)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
