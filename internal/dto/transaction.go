package dto

// CreateTransactionRequest mirrors the external contract: amount and
// category may arrive as JSON numbers or as strings and are coerced in
// the service, never silently zeroed.
type CreateTransactionRequest struct {
	Date        string `json:"date"`
	Amount      any    `json:"amount"`
	Description string `json:"description"`
	Category    any    `json:"category"`
}

type TransactionResponse struct {
	ID          int64             `json:"id"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
	Date        string            `json:"date"`
	CategoryID  int64             `json:"categoryId"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   string            `json:"createdAt"`
}

// Pagination describes a result page's position within the full filtered
// set. Prev and Next are nil at the respective boundaries.
type Pagination struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	TotalData int64 `json:"totalData"`
	TotalPage int   `json:"totalPage"`
	Prev      *int  `json:"prev"`
	Next      *int  `json:"next"`
}

type TransactionListResponse struct {
	Message    string                `json:"message"`
	Data       []TransactionResponse `json:"data"`
	Pagination *Pagination           `json:"pagination"`
}
