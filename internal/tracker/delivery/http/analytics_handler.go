package http

import (
	"net/http"

	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/internal/tracker/service"
	"golang-law-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles HTTP requests for analytics, sector queries, and
// the update history.
type AnalyticsHandler struct {
	lawService service.LawService
	logger     *logger.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(lawService service.LawService, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{lawService: lawService, logger: logger}
}

// RegisterRoutes registers the analytics routes to the Echo group.
func (h *AnalyticsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/analytics", h.GetAnalytics)
	g.GET("/sectors", h.GetAllSectors)
	g.GET("/sectors/:sector/stocks", h.GetStocksBySector)
	g.GET("/history", h.GetHistory)
}

// GetAnalytics godoc
// @Summary Get aggregate analytics
// @Description Get portfolio-wide metrics over all tracked laws
// @Tags analytics
// @Produce  json
// @Success 200 {object} dto.Analytics
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c echo.Context) error {
	analytics, err := h.lawService.CalculateAnalytics(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to calculate analytics", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to calculate analytics"})
	}
	return c.JSON(http.StatusOK, analytics)
}

// GetAllSectors godoc
// @Summary Get all sectors
// @Description Get the distinct sectors across laws and stocks
// @Tags analytics
// @Produce  json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse
// @Router /sectors [get]
func (h *AnalyticsHandler) GetAllSectors(c echo.Context) error {
	sectors, err := h.lawService.GetAllSectors(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get sectors", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get sectors"})
	}
	return c.JSON(http.StatusOK, sectors)
}

// GetStocksBySector godoc
// @Summary Get stocks by sector
// @Description Get deduplicated stock relationships whose law belongs to the sector
// @Tags analytics
// @Produce  json
// @Param   sector  path    string true    "Sector name"
// @Success 200 {array} dto.StockImpactedDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /sectors/{sector}/stocks [get]
func (h *AnalyticsHandler) GetStocksBySector(c echo.Context) error {
	stocks, err := h.lawService.GetStocksBySector(c.Request().Context(), c.Param("sector"))
	if err != nil {
		h.logger.Error("Failed to get stocks by sector", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get stocks"})
	}
	return c.JSON(http.StatusOK, stocks)
}

// GetHistory godoc
// @Summary Get the update history
// @Description Get the most recent audit entries, newest first
// @Tags analytics
// @Produce  json
// @Success 200 {array} entity.UpdateHistory
// @Failure 500 {object} dto.ErrorResponse
// @Router /history [get]
func (h *AnalyticsHandler) GetHistory(c echo.Context) error {
	history, err := h.lawService.GetHistory(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get history", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get history"})
	}
	return c.JSON(http.StatusOK, history)
}
