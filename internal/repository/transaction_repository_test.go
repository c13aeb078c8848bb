package repository

import (
	"testing"
	"time"

	"duitku/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conditionsSQL(t *testing.T, userID uuid.UUID, filter models.TransactionFilter) (string, []interface{}) {
	t.Helper()
	sql, args, err := squirrel.Select("COUNT(*)").
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(transactionConditions(userID, filter)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestTransactionConditions_AlwaysScopedToOwner(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	sql, args := conditionsSQL(t, userID, models.TransactionFilter{})

	assert.Contains(t, sql, "t.user_id = $1")
	require.Len(t, args, 1)
	assert.Equal(t, userID, args[0])
}

func TestTransactionConditions_ComposeWithAnd(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC)
	filter := models.TransactionFilter{
		Type:       models.CategoryTypeExpense,
		CategoryID: 3,
		Search:     "coffee",
		DateFrom:   &from,
		DateTo:     &to,
	}

	sql, args := conditionsSQL(t, uuid.New(), filter)

	assert.Contains(t, sql, "c.type = $2")
	assert.Contains(t, sql, "t.category_id = $3")
	assert.Contains(t, sql, "t.description ILIKE $4 OR c.name ILIKE $5")
	assert.Contains(t, sql, "t.date >= $6")
	assert.Contains(t, sql, "t.date <= $7")

	require.Len(t, args, 7)
	assert.Equal(t, "%coffee%", args[3])
	assert.Equal(t, "%coffee%", args[4])
	assert.Equal(t, from, args[5])
	assert.Equal(t, to, args[6])
}

func TestTransactionConditions_EachFilterNarrows(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	base, baseArgs := conditionsSQL(t, userID, models.TransactionFilter{})

	withType, typeArgs := conditionsSQL(t, userID, models.TransactionFilter{Type: models.CategoryTypeIncome})
	assert.Greater(t, len(withType), len(base))
	assert.Greater(t, len(typeArgs), len(baseArgs))

	withSearch, searchArgs := conditionsSQL(t, userID, models.TransactionFilter{
		Type:   models.CategoryTypeIncome,
		Search: "rent",
	})
	assert.Greater(t, len(withSearch), len(withType))
	assert.Greater(t, len(searchArgs), len(typeArgs))
}

func TestTransactionConditions_SearchIsParameterized(t *testing.T) {
	t.Parallel()

	// A hostile search string must end up as an argument, never in SQL.
	hostile := "'; DROP TABLE transactions; --"
	sql, args := conditionsSQL(t, uuid.New(), models.TransactionFilter{Search: hostile})

	assert.NotContains(t, sql, "DROP TABLE")
	assert.Contains(t, args, "%"+hostile+"%")
}

func TestListOrderBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter models.TransactionFilter
		want   string
	}{
		{"date desc", models.TransactionFilter{SortBy: "date", SortOrder: "desc"}, "t.date DESC"},
		{"amount asc", models.TransactionFilter{SortBy: "amount", SortOrder: "asc"}, "t.amount ASC"},
		{"description desc", models.TransactionFilter{SortBy: "description", SortOrder: "desc"}, "t.description DESC"},
		{"empty falls back to date desc", models.TransactionFilter{}, "t.date DESC"},
		{"unknown column falls back to date", models.TransactionFilter{SortBy: "password"}, "t.date DESC"},
		{"unknown direction falls back to desc", models.TransactionFilter{SortBy: "date", SortOrder: "up"}, "t.date DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, listOrderBy(tt.filter))
		})
	}
}
