package entities

import "time"

// Product is a catalog item with its stock counters.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Stock representation:
//   - Available is what can still be sold or reserved (estoque disponível).
//   - Reserved is held by open quotes (estoque reservado).
//   - On-hand count = Available + Reserved.
//
// Both counters are mutated only through conditional update expressions so
// concurrent reservations cannot oversell.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	SKU       string    `json:"sku"`
	Price     float64   `json:"preco"`
	Available int       `json:"estoque_disponivel"`
	Reserved  int       `json:"estoque_reservado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockAvailability is the transient result of a stock check. Not persisted.
type StockAvailability struct {
	Available         bool   `json:"disponivel"`
	QuantityAvailable int    `json:"estoque_disponivel"`
	QuantityReserved  int    `json:"estoque_reservado"`
	Message           string `json:"mensagem"`
}
