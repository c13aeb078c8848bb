package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"duitku/internal/dto"
	"duitku/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTransactionStore struct {
	rows      []*models.Transaction
	total     int64
	listErr   error
	createErr error
	affected  int64
	deleteErr error

	gotFilter models.TransactionFilter
	created   *models.Transaction
}

func (f *fakeTransactionStore) List(_ context.Context, _ uuid.UUID, filter models.TransactionFilter) ([]*models.Transaction, int64, error) {
	f.gotFilter = filter
	return f.rows, f.total, f.listErr
}

func (f *fakeTransactionStore) Create(_ context.Context, tx *models.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	tx.ID = 42
	f.created = tx
	return nil
}

func (f *fakeTransactionStore) Delete(_ context.Context, _ int64, _ uuid.UUID) (int64, error) {
	return f.affected, f.deleteErr
}

type fakeCategoryGetter struct {
	category *models.Category
	err      error
}

func (f *fakeCategoryGetter) GetByID(_ context.Context, _ int64, _ uuid.UUID) (*models.Category, error) {
	return f.category, f.err
}

func newTransactionService(store *fakeTransactionStore, getter *fakeCategoryGetter) *TransactionService {
	if getter == nil {
		getter = &fakeCategoryGetter{category: &models.Category{ID: 3, Name: "Food", Type: models.CategoryTypeExpense}}
	}
	return NewTransactionService(store, getter, zap.NewNop())
}

func listRow(id int64) *models.Transaction {
	return &models.Transaction{
		ID:       id,
		Amount:   100,
		Date:     time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		Category: &models.Category{ID: 3, Name: "Food", Type: models.CategoryTypeExpense},
	}
}

func TestList_SecondPageOfTwo(t *testing.T) {
	t.Parallel()

	store := &fakeTransactionStore{rows: []*models.Transaction{listRow(2)}, total: 2}
	svc := newTransactionService(store, nil)

	data, pagination, err := svc.List(context.Background(), uuid.New(), ListTransactionsParams{
		Page:  2,
		Limit: 1,
		Type:  "expense",
	})
	require.NoError(t, err)

	require.Len(t, data, 1)
	require.NotNil(t, pagination)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 2, pagination.TotalPage)
	assert.Equal(t, int64(2), pagination.TotalData)
	require.NotNil(t, pagination.Prev)
	assert.Equal(t, 1, *pagination.Prev)
	assert.Nil(t, pagination.Next)

	assert.Equal(t, models.CategoryTypeExpense, store.gotFilter.Type)
	assert.Equal(t, uint64(1), store.gotFilter.Limit)
	assert.Equal(t, uint64(1), store.gotFilter.Offset)
}

func TestList_FirstPageHasNoPrev(t *testing.T) {
	t.Parallel()

	store := &fakeTransactionStore{rows: []*models.Transaction{listRow(1), listRow(2)}, total: 5}
	svc := newTransactionService(store, nil)

	_, pagination, err := svc.List(context.Background(), uuid.New(), ListTransactionsParams{Page: 1, Limit: 2})
	require.NoError(t, err)

	require.NotNil(t, pagination)
	assert.Nil(t, pagination.Prev)
	require.NotNil(t, pagination.Next)
	assert.Equal(t, 2, *pagination.Next)
	assert.Equal(t, 3, pagination.TotalPage)
}

func TestList_EmptyPageHidesPagination(t *testing.T) {
	t.Parallel()

	// Both a genuinely empty filtered set and a page past the end yield
	// nil pagination.
	store := &fakeTransactionStore{rows: nil, total: 2}
	svc := newTransactionService(store, nil)

	data, pagination, err := svc.List(context.Background(), uuid.New(), ListTransactionsParams{Page: 99, Limit: 10})
	require.NoError(t, err)

	assert.Empty(t, data)
	assert.Nil(t, pagination)
}

func TestList_DefaultsApplied(t *testing.T) {
	t.Parallel()

	store := &fakeTransactionStore{rows: []*models.Transaction{listRow(1)}, total: 1}
	svc := newTransactionService(store, nil)

	_, pagination, err := svc.List(context.Background(), uuid.New(), ListTransactionsParams{})
	require.NoError(t, err)

	require.NotNil(t, pagination)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 10, pagination.Limit)
	assert.Equal(t, "date", store.gotFilter.SortBy)
	assert.Equal(t, "desc", store.gotFilter.SortOrder)
	assert.Equal(t, uint64(0), store.gotFilter.Offset)
}

func TestList_FilterTranslation(t *testing.T) {
	t.Parallel()

	store := &fakeTransactionStore{rows: []*models.Transaction{listRow(1)}, total: 1}
	svc := newTransactionService(store, nil)

	_, _, err := svc.List(context.Background(), uuid.New(), ListTransactionsParams{
		Category: "3",
		Search:   "  coffee ",
		DateFrom: "2026-08-01",
		DateTo:   "2026-08-31",
	})
	require.NoError(t, err)

	f := store.gotFilter
	assert.Equal(t, int64(3), f.CategoryID)
	assert.Equal(t, "coffee", f.Search)
	require.NotNil(t, f.DateFrom)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), *f.DateFrom)
	require.NotNil(t, f.DateTo)
	// Upper bound is inclusive of the whole calendar day.
	assert.Equal(t, time.Date(2026, time.August, 31, 23, 59, 59, endOfDayNsec, time.UTC), *f.DateTo)
}

func TestList_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params ListTransactionsParams
	}{
		{"unknown sort field", ListTransactionsParams{SortBy: "user_id"}},
		{"sql in sort field", ListTransactionsParams{SortBy: "date; DROP TABLE transactions"}},
		{"unknown sort order", ListTransactionsParams{SortOrder: "sideways"}},
		{"unknown type", ListTransactionsParams{Type: "savings"}},
		{"non numeric category", ListTransactionsParams{Category: "food"}},
		{"bad dateFrom", ListTransactionsParams{DateFrom: "08/01/2026"}},
		{"bad dateTo", ListTransactionsParams{DateTo: "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTransactionService(&fakeTransactionStore{}, nil)
			_, _, err := svc.List(context.Background(), uuid.New(), tt.params)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestList_TypeAllMeansNoRestriction(t *testing.T) {
	t.Parallel()

	store := &fakeTransactionStore{rows: []*models.Transaction{listRow(1)}, total: 1}
	svc := newTransactionService(store, nil)

	_, _, err := svc.List(context.Background(), uuid.New(), ListTransactionsParams{Type: "all"})
	require.NoError(t, err)
	assert.Empty(t, store.gotFilter.Type)
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	store := &fakeTransactionStore{}
	svc := newTransactionService(store, nil)

	created, err := svc.Create(context.Background(), uuid.New(), &dto.CreateTransactionRequest{
		Date:        "2026-08-02",
		Amount:      float64(5000000),
		Description: " Monthly salary ",
		Category:    float64(3),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, float64(5000000), created.Amount)
	assert.Equal(t, "Monthly salary", created.Description)
	require.NotNil(t, created.Category)
	assert.Equal(t, int64(3), created.Category.ID)

	require.NotNil(t, store.created)
	assert.Equal(t, time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC), store.created.Date)
}

func TestCreate_CoercesStringAmountAndCategory(t *testing.T) {
	t.Parallel()

	store := &fakeTransactionStore{}
	svc := newTransactionService(store, nil)

	created, err := svc.Create(context.Background(), uuid.New(), &dto.CreateTransactionRequest{
		Date:     "2026-08-02",
		Amount:   "123.45",
		Category: "3",
	})
	require.NoError(t, err)
	assert.Equal(t, 123.45, created.Amount)
	assert.Equal(t, int64(3), created.CategoryID)
}

func TestCreate_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{"missing date", dto.CreateTransactionRequest{Amount: float64(10), Category: float64(3)}},
		{"malformed date", dto.CreateTransactionRequest{Date: "02-08-2026", Amount: float64(10), Category: float64(3)}},
		{"missing amount", dto.CreateTransactionRequest{Date: "2026-08-02", Category: float64(3)}},
		{"non numeric amount", dto.CreateTransactionRequest{Date: "2026-08-02", Amount: "abc", Category: float64(3)}},
		{"boolean amount", dto.CreateTransactionRequest{Date: "2026-08-02", Amount: true, Category: float64(3)}},
		{"missing category", dto.CreateTransactionRequest{Date: "2026-08-02", Amount: float64(10)}},
		{"fractional category id", dto.CreateTransactionRequest{Date: "2026-08-02", Amount: float64(10), Category: 2.5}},
		{"non numeric category", dto.CreateTransactionRequest{Date: "2026-08-02", Amount: float64(10), Category: "food"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTransactionService(&fakeTransactionStore{}, nil)
			_, err := svc.Create(context.Background(), uuid.New(), &tt.req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreate_ForeignCategoryNotFound(t *testing.T) {
	t.Parallel()

	getter := &fakeCategoryGetter{err: errors.New("no rows in result set")}
	svc := newTransactionService(&fakeTransactionStore{}, getter)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateTransactionRequest{
		Date:     "2026-08-02",
		Amount:   float64(10),
		Category: float64(3),
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_NotOwnedOrMissing(t *testing.T) {
	t.Parallel()

	svc := newTransactionService(&fakeTransactionStore{affected: 0}, nil)
	err := svc.Delete(context.Background(), uuid.New(), 7)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	svc := newTransactionService(&fakeTransactionStore{affected: 1}, nil)
	require.NoError(t, svc.Delete(context.Background(), uuid.New(), 7))
}

func TestDelete_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")
	svc := newTransactionService(&fakeTransactionStore{deleteErr: storeErr}, nil)
	err := svc.Delete(context.Background(), uuid.New(), 7)
	require.ErrorIs(t, err, storeErr)
}
