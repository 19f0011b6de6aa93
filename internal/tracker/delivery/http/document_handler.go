package http

import (
	"fmt"
	"io"
	"net/http"

	"golang-law-tracker/internal/tracker/config"
	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/internal/tracker/service"
	"golang-law-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DocumentHandler handles document uploads for the ingestion pipeline.
type DocumentHandler struct {
	ingestionService service.IngestionService
	cfg              *config.Config
	logger           *logger.Logger
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(ingestionService service.IngestionService, cfg *config.Config, logger *logger.Logger) *DocumentHandler {
	return &DocumentHandler{ingestionService: ingestionService, cfg: cfg, logger: logger}
}

// RegisterRoutes registers the document routes to the Echo group.
func (h *DocumentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/upload", h.UploadDocument)
}

// UploadDocument godoc
// @Summary Upload a legal document
// @Description Parse an uploaded document, extract law fields, and create a law record
// @Tags documents
// @Accept  multipart/form-data
// @Produce  json
// @Param   file  formData    file true    "Document file (txt, html, xml, or pdf)"
// @Success 201 {object} dto.UploadDocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /documents/upload [post]
func (h *DocumentHandler) UploadDocument(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing file in request"})
	}

	maxSize := h.cfg.Upload.MaxFileSizeBytes
	if fileHeader.Size > maxSize {
		return c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: fmt.Sprintf("File exceeds maximum size of %d bytes", maxSize),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to open uploaded file"})
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read uploaded file"})
	}
	if int64(len(data)) > maxSize {
		return c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: fmt.Sprintf("File exceeds maximum size of %d bytes", maxSize),
		})
	}

	h.logger.Info("Received document upload",
		logger.StringField("filename", fileHeader.Filename),
		logger.IntField("size_bytes", len(data)),
	)

	resp, err := h.ingestionService.IngestDocument(c.Request().Context(), data, fileHeader.Filename)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}
