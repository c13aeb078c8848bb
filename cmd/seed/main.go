package main

import (
	"context"
	"log"
	"time"

	"duitku/internal/models"
	"duitku/internal/repository"
	"duitku/pkg/auth"
	"duitku/pkg/config"
	"duitku/pkg/logger"
	"duitku/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@duitku.local"
	demoPassword = "password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, &cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	catRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if existing, _ := userRepo.GetByEmail(ctx, demoEmail); existing != nil {
		appLogger.Info("Demo user already exists, nothing to do", zap.String("email", demoEmail))
		return
	}

	hashedPassword, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash password", zap.Error(err))
	}

	name := "Demo User"
	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Name:      &name,
		Email:     demoEmail,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	categories := []*models.Category{
		{Name: "Salary", Type: models.CategoryTypeIncome, UserID: user.ID, CreatedAt: now},
		{Name: "Freelance", Type: models.CategoryTypeIncome, UserID: user.ID, CreatedAt: now},
		{Name: "Food", Type: models.CategoryTypeExpense, UserID: user.ID, CreatedAt: now},
		{Name: "Transport", Type: models.CategoryTypeExpense, UserID: user.ID, CreatedAt: now},
		{Name: "Entertainment", Type: models.CategoryTypeExpense, UserID: user.ID, CreatedAt: now},
	}
	byName := make(map[string]*models.Category, len(categories))
	for _, c := range categories {
		if err := catRepo.Create(ctx, c); err != nil {
			appLogger.Fatal("Failed to create category", zap.String("name", c.Name), zap.Error(err))
		}
		byName[c.Name] = c
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	transactions := []*models.Transaction{
		{Amount: 5000000, Description: "Monthly salary", Date: monthStart.AddDate(0, 0, 1), CategoryID: byName["Salary"].ID},
		{Amount: 750000, Description: "Logo design gig", Date: monthStart.AddDate(0, 0, 4), CategoryID: byName["Freelance"].ID},
		{Amount: 1200000, Description: "Groceries", Date: monthStart.AddDate(0, 0, 9), CategoryID: byName["Food"].ID},
		{Amount: 150000, Description: "Fuel", Date: monthStart.AddDate(0, 0, 11), CategoryID: byName["Transport"].ID},
		{Amount: 200000, Description: "Cinema night", Date: monthStart.AddDate(0, 0, 14), CategoryID: byName["Entertainment"].ID},
	}
	for _, tx := range transactions {
		tx.UserID = user.ID
		tx.CreatedAt = now
		if err := txRepo.Create(ctx, tx); err != nil {
			appLogger.Fatal("Failed to create transaction", zap.String("description", tx.Description), zap.Error(err))
		}
	}

	appLogger.Info("Seeding complete",
		zap.String("email", demoEmail),
		zap.Int("categories", len(categories)),
		zap.Int("transactions", len(transactions)),
	)
}
