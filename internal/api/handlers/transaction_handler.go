package handlers

import (
	"errors"
	"strconv"

	"duitku/internal/dto"
	"duitku/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// List godoc
// @Summary List transactions
// @Description Filtered, sorted and paginated transactions of the caller
// @Tags transactions
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param sortBy query string false "Sort field" Enums(date, amount, description)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Param type query string false "Category type" Enums(all, income, expense)
// @Param category query int false "Category id"
// @Param search query string false "Substring match on description or category name"
// @Param dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	params := service.ListTransactionsParams{
		Page:      c.QueryInt("page", 0),
		Limit:     c.QueryInt("limit", 0),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		DateFrom:  c.Query("dateFrom"),
		DateTo:    c.Query("dateTo"),
	}

	data, pagination, err := h.txService.List(c.Context(), userID, params)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": vErr.Message,
			})
		}
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return internalError(c)
	}

	return c.JSON(dto.TransactionListResponse{
		Message:    "Transactions fetched",
		Data:       data,
		Pagination: pagination,
	})
}

// Create godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction payload"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	created, err := h.txService.Create(c.Context(), userID, &req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": vErr.Message,
			})
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		h.logger.Error("Failed to create transaction", zap.Error(err))
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Transaction created",
		"data":    created,
	})
}

// Delete godoc
// @Summary Delete a transaction
// @Description Deletes the transaction only if it belongs to the caller
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction id"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid transaction id",
		})
	}

	if err := h.txService.Delete(c.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Transaction not found",
			})
		}
		h.logger.Error("Failed to delete transaction", zap.Error(err))
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}
