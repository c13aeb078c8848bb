package repository

import (
	"context"
	"fmt"
	"time"

	"duitku/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Sortable columns exposed to list queries. Anything else never reaches
// SQL: the service rejects it and listOrderBy falls back to the date
// column as a second line of defense.
var sortColumns = map[string]string{
	"date":        "t.date",
	"amount":      "t.amount",
	"description": "t.description",
}

var transactionColumns = []string{
	"t.id", "t.amount", "t.description", "t.date", "t.category_id", "t.user_id", "t.created_at",
	"c.id", "c.name", "c.type", "c.user_id", "c.created_at",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("amount", "description", "date", "category_id", "user_id", "created_at").
		Values(tx.Amount, tx.Description, tx.Date, tx.CategoryID, tx.UserID, tx.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&tx.ID)
}

// List returns one page of the user's transactions matching the filter,
// together with the total number of matching rows (unlimited by paging).
func (r *TransactionRepository) List(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]*models.Transaction, int64, error) {
	conds := transactionConditions(userID, filter)

	countQuery := squirrel.Select("COUNT(*)").
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(conds).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery := squirrel.Select(transactionColumns...).
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(conds).
		OrderBy(listOrderBy(filter), "t.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		PlaceholderFormat(squirrel.Dollar)

	transactions, err := r.queryTransactions(ctx, listQuery)
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// ListByDateRange returns all of the user's transactions dated within the
// inclusive [start, end] window, joined with their categories.
func (r *TransactionRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(squirrel.And{
			squirrel.Eq{"t.user_id": userID},
			squirrel.GtOrEq{"t.date": start},
			squirrel.LtOrEq{"t.date": end},
		}).
		OrderBy("t.date DESC", "t.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

// ListRecent returns the user's most recently dated transactions,
// irrespective of any period filter.
func (r *TransactionRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit uint64) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.user_id": userID}).
		OrderBy("t.date DESC", "t.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

// Delete removes the transaction scoped by owner and reports how many
// rows were affected.
func (r *TransactionRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) (int64, error) {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		var c models.Category
		if err := rows.Scan(
			&tx.ID, &tx.Amount, &tx.Description, &tx.Date, &tx.CategoryID, &tx.UserID, &tx.CreatedAt,
			&c.ID, &c.Name, &c.Type, &c.UserID, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		tx.Category = &c
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

// transactionConditions composes the optional filter predicates with
// logical AND on top of the mandatory owner scope.
func transactionConditions(userID uuid.UUID, filter models.TransactionFilter) squirrel.And {
	conds := squirrel.And{squirrel.Eq{"t.user_id": userID}}

	if filter.Type != "" {
		conds = append(conds, squirrel.Eq{"c.type": filter.Type})
	}
	if filter.CategoryID != 0 {
		conds = append(conds, squirrel.Eq{"t.category_id": filter.CategoryID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"t.description": pattern},
			squirrel.ILike{"c.name": pattern},
		})
	}
	if filter.DateFrom != nil {
		conds = append(conds, squirrel.GtOrEq{"t.date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conds = append(conds, squirrel.LtOrEq{"t.date": *filter.DateTo})
	}

	return conds
}

func listOrderBy(filter models.TransactionFilter) string {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "t.date"
	}

	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	return fmt.Sprintf("%s %s", column, direction)
}
