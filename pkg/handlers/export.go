package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/pkg/export"
	"github.com/sannty/salescrm/pkg/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams XLSX exports
type ExportHandler struct {
	export *export.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportSvc *export.Service) *ExportHandler {
	return &ExportHandler{export: exportSvc}
}

// ExportLeads godoc
// @Summary Export leads as XLSX
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /export/leads [get]
func (h *ExportHandler) ExportLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	data, err := h.export.Leads(ctx, orgID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to export leads"})
	}

	filename := fmt.Sprintf("leads-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

// ExportPipeline godoc
// @Summary Export the opportunity pipeline as XLSX
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /export/pipeline [get]
func (h *ExportHandler) ExportPipeline(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	data, err := h.export.Pipeline(ctx, orgID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to export pipeline"})
	}

	filename := fmt.Sprintf("pipeline-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
