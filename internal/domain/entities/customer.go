package entities

import "time"

// Customer is a registry entry (cliente).
//
// Storage model (DynamoDB):
//   - PK: id
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"telefone,omitempty"`
	Document  string    `json:"documento,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
