package service

import (
	"context"
	"strings"
	"time"

	"duitku/internal/dto"
	"duitku/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Category, error)
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.Category, error)
	GetByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType models.CategoryType) (*models.Category, error)
	Delete(ctx context.Context, id int64, userID uuid.UUID) (int64, error)
	HasTransactions(ctx context.Context, categoryID int64) (bool, error)
}

type CategoryService struct {
	catRepo CategoryStore
	logger  *zap.Logger
}

func NewCategoryService(catRepo CategoryStore, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		catRepo: catRepo,
		logger:  logger,
	}
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]dto.CategoryResponse, error) {
	categories, err := s.catRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, categoryResponse(c))
	}
	return resp, nil
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := sanitizeUTF8(strings.TrimSpace(req.Name))
	if name == "" || req.Type == "" {
		return nil, newValidationError("Name and type are required")
	}
	if !models.ValidCategoryType(req.Type) {
		return nil, newValidationError("Type must be income or expense")
	}
	categoryType := models.CategoryType(req.Type)

	existing, _ := s.catRepo.GetByNameAndType(ctx, userID, name, categoryType)
	if existing != nil {
		return nil, ErrCategoryExists
	}

	category := &models.Category{
		Name:      name,
		Type:      categoryType,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.catRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category created",
		zap.Int64("categoryID", category.ID),
		zap.String("userID", userID.String()),
	)

	resp := categoryResponse(category)
	return &resp, nil
}

// Delete removes the caller's category. Deletion is blocked while
// transactions still reference the category.
func (s *CategoryService) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	category, err := s.catRepo.GetByID(ctx, id, userID)
	if err != nil {
		return ErrNotFound
	}

	inUse, err := s.catRepo.HasTransactions(ctx, category.ID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCategoryInUse
	}

	affected, err := s.catRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func categoryResponse(c *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
		Type: string(c.Type),
	}
}
