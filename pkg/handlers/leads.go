package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/pkg/leads"
	"github.com/sannty/salescrm/pkg/models"
)

// LeadHandler handles lead HTTP endpoints
type LeadHandler struct {
	leads     *leads.Service
	validator *validator.Validate
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadSvc *leads.Service) *LeadHandler {
	return &LeadHandler{leads: leadSvc, validator: validator.New()}
}

// CreateLead godoc
// @Summary Create a lead
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body leads.CreateLeadRequest true "Lead data"
// @Success 201 {object} ent.Lead
// @Failure 400 {object} models.ErrorResponse
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req leads.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, userID := requestScope(c)
	created, err := h.leads.Create(ctx, orgID, userID, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create lead"})
	}

	return c.JSON(http.StatusCreated, created)
}

// ListLeads godoc
// @Summary List leads
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} ent.Lead
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	result, err := h.leads.List(ctx, orgID, c.QueryParam("status"), queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list leads"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetLead godoc
// @Summary Get a lead
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} ent.Lead
// @Failure 404 {object} models.ErrorResponse
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid lead ID"})
	}

	orgID, _ := requestScope(c)
	l, err := h.leads.Get(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, leads.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch lead"})
	}

	return c.JSON(http.StatusOK, l)
}

// UpdateLead godoc
// @Summary Update a lead
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body leads.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} ent.Lead
// @Failure 404 {object} models.ErrorResponse
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid lead ID"})
	}

	var req leads.UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, userID := requestScope(c)
	updated, err := h.leads.Update(ctx, orgID, userID, id, req)
	if err != nil {
		if errors.Is(err, leads.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update lead"})
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteLead godoc
// @Summary Delete a lead
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid lead ID"})
	}

	orgID, _ := requestScope(c)
	if err := h.leads.Delete(ctx, orgID, id); err != nil {
		if errors.Is(err, leads.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete lead"})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Lead deleted"})
}

// ConvertLead godoc
// @Summary Convert a qualified lead
// @Description Creates an account, contact and opportunity from a qualified lead in one transaction
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} leads.ConversionResult
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /leads/{id}/convert [post]
func (h *LeadHandler) ConvertLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid lead ID"})
	}

	orgID, userID := requestScope(c)
	result, err := h.leads.Convert(ctx, orgID, userID, id)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		case errors.Is(err, leads.ErrNotQualified):
			return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "Only qualified leads can be converted"})
		default:
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to convert lead"})
		}
	}

	return c.JSON(http.StatusOK, result)
}
