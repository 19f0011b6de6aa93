package http

import (
	"errors"
	"net/http"

	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/internal/tracker/repository"
	"golang-law-tracker/internal/tracker/service"
	"golang-law-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// LawHandler handles HTTP requests for laws and their stock relationships.
type LawHandler struct {
	lawService service.LawService
	logger     *logger.Logger
}

// NewLawHandler creates a new LawHandler.
func NewLawHandler(lawService service.LawService, logger *logger.Logger) *LawHandler {
	return &LawHandler{lawService: lawService, logger: logger}
}

// RegisterRoutes registers the law routes to the Echo group.
func (h *LawHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateLaw)
	g.GET("", h.GetAllLaws)
	g.GET("/:id", h.GetLawByID)
	g.PATCH("/:id", h.UpdateLaw)
	g.DELETE("/:id", h.DeleteLaw)

	g.POST("/:id/stocks", h.AddStockToLaw)
	g.PATCH("/:id/stocks/:ticker", h.UpdateStockInLaw)
	g.DELETE("/:id/stocks/:ticker", h.RemoveStockFromLaw)
}

// writeError maps service and repository errors to HTTP status codes.
func writeError(c echo.Context, err error) error {
	var validationErr *repository.ValidationError
	switch {
	case errors.Is(err, repository.ErrLawNotFound), errors.Is(err, repository.ErrStockNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrLawAlreadyExists):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

// CreateLaw godoc
// @Summary Create a new law
// @Description Create a law record with optional stock relationships
// @Tags laws
// @Accept  json
// @Produce  json
// @Param   law  body    dto.CreateLawRequest   true    "Law to create"
// @Success 201 {object} dto.LawResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /laws [post]
func (h *LawHandler) CreateLaw(c echo.Context) error {
	var req dto.CreateLawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	lawResponse, err := h.lawService.CreateLaw(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, lawResponse)
}

// GetAllLaws godoc
// @Summary Get all laws
// @Description Get all laws keyed by law ID
// @Tags laws
// @Produce  json
// @Success 200 {object} map[string]dto.LawResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /laws [get]
func (h *LawHandler) GetAllLaws(c echo.Context) error {
	laws, err := h.lawService.GetAllLaws(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get all laws", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get laws"})
	}
	return c.JSON(http.StatusOK, laws)
}

// GetLawByID godoc
// @Summary Get a law by ID
// @Description Get a single law by its ID
// @Tags laws
// @Produce  json
// @Param   id  path    string true    "Law ID"
// @Success 200 {object} dto.LawResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /laws/{id} [get]
func (h *LawHandler) GetLawByID(c echo.Context) error {
	lawResponse, err := h.lawService.GetLawByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, lawResponse)
}

// UpdateLaw godoc
// @Summary Update an existing law
// @Description Partially update a law; only provided fields are applied
// @Tags laws
// @Accept  json
// @Produce  json
// @Param   id  path    string true    "Law ID"
// @Param   law  body    dto.UpdateLawRequest   true    "Fields to update"
// @Success 200 {object} dto.LawResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /laws/{id} [patch]
func (h *LawHandler) UpdateLaw(c echo.Context) error {
	var req dto.UpdateLawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	lawResponse, err := h.lawService.UpdateLaw(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, lawResponse)
}

// DeleteLaw godoc
// @Summary Delete a law
// @Description Delete a law and its stock relationships
// @Tags laws
// @Produce  json
// @Param   id  path    string true    "Law ID"
// @Success 204 {object} nil
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /laws/{id} [delete]
func (h *LawHandler) DeleteLaw(c echo.Context) error {
	if err := h.lawService.DeleteLaw(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddStockToLaw godoc
// @Summary Add a stock to a law
// @Description Add or replace a stock relationship on a law
// @Tags laws
// @Accept  json
// @Produce  json
// @Param   id  path    string true    "Law ID"
// @Param   stock  body    dto.StockImpactedDTO   true    "Stock relationship"
// @Success 200 {object} dto.LawResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /laws/{id}/stocks [post]
func (h *LawHandler) AddStockToLaw(c echo.Context) error {
	var req dto.StockImpactedDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	lawResponse, err := h.lawService.AddStockToLaw(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, lawResponse)
}

// UpdateStockInLaw godoc
// @Summary Update a stock relationship
// @Description Partially update a stock relationship on a law
// @Tags laws
// @Accept  json
// @Produce  json
// @Param   id  path    string true    "Law ID"
// @Param   ticker  path    string true    "Stock ticker"
// @Param   stock  body    dto.UpdateStockRequest   true    "Fields to update"
// @Success 200 {object} dto.LawResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /laws/{id}/stocks/{ticker} [patch]
func (h *LawHandler) UpdateStockInLaw(c echo.Context) error {
	var req dto.UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	lawResponse, err := h.lawService.UpdateStockInLaw(c.Request().Context(), c.Param("id"), c.Param("ticker"), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, lawResponse)
}

// RemoveStockFromLaw godoc
// @Summary Remove a stock from a law
// @Description Remove a stock relationship; removing an absent ticker is a no-op
// @Tags laws
// @Produce  json
// @Param   id  path    string true    "Law ID"
// @Param   ticker  path    string true    "Stock ticker"
// @Success 200 {object} dto.LawResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /laws/{id}/stocks/{ticker} [delete]
func (h *LawHandler) RemoveStockFromLaw(c echo.Context) error {
	lawResponse, err := h.lawService.RemoveStockFromLaw(c.Request().Context(), c.Param("id"), c.Param("ticker"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, lawResponse)
}
