package service

import (
	"context"
	"time"

	"duitku/internal/dto"
	"duitku/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// recentLimit caps the "recent activity" list on the dashboard.
const recentLimit = 5

// shortDateLayout renders dd/mm/yy, matching the short date format the
// web client displays for recent activity.
const shortDateLayout = "02/01/06"

type DashboardTransactionReader interface {
	ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Transaction, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit uint64) ([]*models.Transaction, error)
}

type DashboardService struct {
	txRepo DashboardTransactionReader
	logger *zap.Logger
}

func NewDashboardService(txRepo DashboardTransactionReader, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		txRepo: txRepo,
		logger: logger,
	}
}

// Stats aggregates the user's transactions over the requested period.
// Recent activity is always global, irrespective of the period filter.
func (s *DashboardService) Stats(ctx context.Context, userID uuid.UUID, period string) (*dto.DashboardStats, error) {
	rng := ResolvePeriod(period, time.Now())

	transactions, err := s.txRepo.ListByDateRange(ctx, userID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	var totalIncome, totalExpense float64
	for _, tx := range transactions {
		switch tx.Category.Type {
		case models.CategoryTypeIncome:
			totalIncome += tx.Amount
		case models.CategoryTypeExpense:
			totalExpense += tx.Amount
		}
	}

	recent, err := s.txRepo.ListRecent(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}

	recentTransactions := make([]dto.RecentTransaction, 0, len(recent))
	for _, tx := range recent {
		recentTransactions = append(recentTransactions, dto.RecentTransaction{
			ID:          tx.ID,
			Description: tx.Description,
			Amount:      tx.Amount,
			Date:        tx.Date.Format(shortDateLayout),
			Category:    tx.Category.Name,
			Type:        string(tx.Category.Type),
		})
	}

	return &dto.DashboardStats{
		TotalIncome:        totalIncome,
		TotalExpense:       totalExpense,
		Balance:            totalIncome - totalExpense,
		TransactionCount:   len(transactions),
		RecentTransactions: recentTransactions,
		Period:             rng.Token,
		DateRange: dto.DateRange{
			Start: rng.Start.Format(time.RFC3339),
			End:   rng.End.Format(time.RFC3339),
		},
		MonthlyData:       []dto.MonthlyPoint{},
		CategoryBreakdown: []dto.CategoryBreakdown{},
	}, nil
}
