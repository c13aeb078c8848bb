package handlers

import (
	"errors"
	"strconv"

	"duitku/internal/dto"
	"duitku/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	catService *service.CategoryService
	logger     *zap.Logger
}

func NewCategoryHandler(catService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		catService: catService,
		logger:     logger,
	}
}

// List godoc
// @Summary List the caller's categories
// @Tags categories
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} map[string]string
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	categories, err := h.catService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return internalError(c)
	}

	return c.JSON(categories)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category payload"
// @Security Bearer
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	created, err := h.catService.Create(c.Context(), userID, &req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": vErr.Message,
			})
		case errors.Is(err, service.ErrCategoryExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Category already exists",
			})
		}
		h.logger.Error("Failed to create category", zap.Error(err))
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Delete godoc
// @Summary Delete a category
// @Description Blocked while transactions still reference the category
// @Tags categories
// @Produce json
// @Param id path int true "Category id"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category id",
		})
	}

	if err := h.catService.Delete(c.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		case errors.Is(err, service.ErrCategoryInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Category still has transactions",
			})
		}
		h.logger.Error("Failed to delete category", zap.Error(err))
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Category deleted"})
}
