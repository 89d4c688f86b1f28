package request

// StockCheckRequest asks whether quantidade of produto_id can still be sold
// or reserved.
type StockCheckRequest struct {
	ProductID string `json:"produto_id" binding:"required"`
	Quantity  int    `json:"quantidade" binding:"required,gt=0"`
}
