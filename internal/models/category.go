package models

import (
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// ValidCategoryType reports whether t is one of the two known category types.
func ValidCategoryType(t string) bool {
	return t == string(CategoryTypeIncome) || t == string(CategoryTypeExpense)
}

type Category struct {
	ID        int64        `db:"id"`
	Name      string       `db:"name"`
	Type      CategoryType `db:"type"`
	UserID    uuid.UUID    `db:"user_id"`
	CreatedAt time.Time    `db:"created_at"`
}
