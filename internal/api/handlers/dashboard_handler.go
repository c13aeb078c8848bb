package handlers

import (
	"duitku/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Aggregated income, expense and balance for the requested period
// @Tags dashboard
// @Produce json
// @Param period query string false "Period token" Enums(this-month, last-month, this-quarter, this-year, all-time)
// @Security Bearer
// @Success 200 {object} dto.DashboardStats
// @Failure 401 {object} map[string]string
// @Router /api/dashboard [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	stats, err := h.dashboardService.Stats(c.Context(), userID, c.Query("period"))
	if err != nil {
		h.logger.Error("Failed to aggregate dashboard stats", zap.Error(err))
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Stats fetched", "data": stats})
}
