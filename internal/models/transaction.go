package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID          int64     `db:"id"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
	CategoryID  int64     `db:"category_id"`
	UserID      uuid.UUID `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`

	// Category is populated by queries that join the owning category.
	Category *Category
}

// TransactionFilter describes the optional conditions of a transaction
// list query. Zero values mean "no restriction". SortBy and SortOrder are
// expected to be validated against a whitelist before reaching the store.
type TransactionFilter struct {
	Type       CategoryType
	CategoryID int64
	Search     string
	DateFrom   *time.Time
	DateTo     *time.Time
	SortBy     string
	SortOrder  string
	Limit      uint64
	Offset     uint64
}
