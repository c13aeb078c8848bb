package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"duitku/internal/dto"
	"duitku/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	dateLayout = "2006-01-02"
)

var sortableFields = map[string]bool{
	"date":        true,
	"amount":      true,
	"description": true,
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	List(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]*models.Transaction, int64, error)
	Delete(ctx context.Context, id int64, userID uuid.UUID) (int64, error)
}

type CategoryGetter interface {
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.Category, error)
}

type TransactionService struct {
	txRepo  TransactionStore
	catRepo CategoryGetter
	logger  *zap.Logger
}

func NewTransactionService(txRepo TransactionStore, catRepo CategoryGetter, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo:  txRepo,
		catRepo: catRepo,
		logger:  logger,
	}
}

// ListTransactionsParams carries the raw, still unvalidated query
// parameters of a list request.
type ListTransactionsParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Type      string
	Category  string
	Search    string
	DateFrom  string
	DateTo    string
}

// List translates the optional filter parameters into a store query and
// returns one page of results with pagination metadata. The metadata is
// nil when the current page holds no rows, including pages past the end
// of the result set.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, params ListTransactionsParams) ([]dto.TransactionResponse, *dto.Pagination, error) {
	filter, err := buildFilter(params)
	if err != nil {
		return nil, nil, err
	}

	page := params.Page
	if page < 1 {
		page = defaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	filter.Limit = uint64(limit)
	filter.Offset = uint64(page-1) * uint64(limit)

	transactions, total, err := s.txRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, nil, err
	}

	data := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		data = append(data, transactionResponse(tx))
	}

	if len(data) == 0 {
		return data, nil, nil
	}

	totalPage := int(math.Ceil(float64(total) / float64(limit)))
	pagination := &dto.Pagination{
		Page:      page,
		Limit:     limit,
		TotalData: total,
		TotalPage: totalPage,
	}
	if page > 1 {
		prev := page - 1
		pagination.Prev = &prev
	}
	if page < totalPage {
		next := page + 1
		pagination.Next = &next
	}

	return data, pagination, nil
}

// Create validates and coerces the request payload, verifies that the
// category belongs to the caller, and persists the transaction. The date
// string is stored as UTC midnight of the given calendar day.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if req.Date == "" {
		return nil, newValidationError("Date is required")
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, newValidationError("Date must be in YYYY-MM-DD format")
	}

	if req.Amount == nil {
		return nil, newValidationError("Amount is required")
	}
	amount, ok := coerceFloat(req.Amount)
	if !ok {
		return nil, newValidationError("Amount must be a number")
	}

	if req.Category == nil {
		return nil, newValidationError("Category is required")
	}
	categoryID, ok := coerceInt(req.Category)
	if !ok {
		return nil, newValidationError("Category must be an integer id")
	}

	category, err := s.catRepo.GetByID(ctx, categoryID, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	tx := &models.Transaction{
		Amount:      amount,
		Description: sanitizeUTF8(strings.TrimSpace(req.Description)),
		Date:        date,
		CategoryID:  category.ID,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	tx.Category = category

	s.logger.Info("Transaction created",
		zap.Int64("transactionID", tx.ID),
		zap.String("userID", userID.String()),
	)

	resp := transactionResponse(tx)
	return &resp, nil
}

// Delete removes the transaction only if it belongs to the caller.
func (s *TransactionService) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	affected, err := s.txRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func buildFilter(params ListTransactionsParams) (models.TransactionFilter, error) {
	var filter models.TransactionFilter

	switch params.Type {
	case "", "all":
		// no restriction
	case string(models.CategoryTypeIncome), string(models.CategoryTypeExpense):
		filter.Type = models.CategoryType(params.Type)
	default:
		return filter, newValidationError("Type must be income, expense or all")
	}

	if params.Category != "" {
		id, err := strconv.ParseInt(params.Category, 10, 64)
		if err != nil {
			return filter, newValidationError("Category must be an integer id")
		}
		filter.CategoryID = id
	}

	filter.Search = strings.TrimSpace(params.Search)

	if params.DateFrom != "" {
		from, err := time.ParseInLocation(dateLayout, params.DateFrom, time.UTC)
		if err != nil {
			return filter, newValidationError("dateFrom must be in YYYY-MM-DD format")
		}
		filter.DateFrom = &from
	}
	if params.DateTo != "" {
		to, err := time.ParseInLocation(dateLayout, params.DateTo, time.UTC)
		if err != nil {
			return filter, newValidationError("dateTo must be in YYYY-MM-DD format")
		}
		// Inclusive upper bound covers the whole calendar day.
		to = to.Add(24*time.Hour - time.Millisecond)
		filter.DateTo = &to
	}

	switch params.SortBy {
	case "":
		filter.SortBy = "date"
	default:
		if !sortableFields[params.SortBy] {
			return filter, newValidationError("Invalid sort field")
		}
		filter.SortBy = params.SortBy
	}

	switch params.SortOrder {
	case "":
		filter.SortOrder = "desc"
	case "asc", "desc":
		filter.SortOrder = params.SortOrder
	default:
		return filter, newValidationError("Sort order must be asc or desc")
	}

	return filter, nil
}

// coerceFloat normalizes a JSON number or numeric string to float64.
// Monetary arithmetic only ever happens on the coerced value.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func coerceInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func transactionResponse(tx *models.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339),
		CategoryID:  tx.CategoryID,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.Category != nil {
		resp.Category = &dto.CategoryResponse{
			ID:   tx.Category.ID,
			Name: tx.Category.Name,
			Type: string(tx.Category.Type),
		}
	}
	return resp
}
