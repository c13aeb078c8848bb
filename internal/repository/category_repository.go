package repository

import (
	"context"

	"duitku/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := squirrel.Insert("categories").
		Columns("name", "type", "user_id", "created_at").
		Values(category.Name, category.Type, category.UserID, category.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&category.ID)
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Category, error) {
	query := squirrel.Select("id", "name", "type", "user_id", "created_at").
		From("categories").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.Category, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "user_id": userID})
}

func (r *CategoryRepository) GetByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType models.CategoryType) (*models.Category, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID, "name": name, "type": categoryType})
}

func (r *CategoryRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Category, error) {
	query := squirrel.Select("id", "name", "type", "user_id", "created_at").
		From("categories").
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c models.Category
	err = r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.Name, &c.Type, &c.UserID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Delete removes the category scoped by owner and reports how many rows
// were affected.
func (r *CategoryRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) (int64, error) {
	query := squirrel.Delete("categories").
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

// HasTransactions reports whether any transaction still references the
// category.
func (r *CategoryRepository) HasTransactions(ctx context.Context, categoryID int64) (bool, error) {
	query := squirrel.Select("COUNT(*)").
		From("transactions").
		Where(squirrel.Eq{"category_id": categoryID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}
