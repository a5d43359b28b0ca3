package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/pkg/models"
	"github.com/sannty/salescrm/pkg/opportunities"
)

// OpportunityHandler handles opportunity HTTP endpoints
type OpportunityHandler struct {
	opps      *opportunities.Service
	validator *validator.Validate
}

// NewOpportunityHandler creates a new opportunity handler
func NewOpportunityHandler(oppSvc *opportunities.Service) *OpportunityHandler {
	return &OpportunityHandler{opps: oppSvc, validator: validator.New()}
}

// CreateOpportunity godoc
// @Summary Create an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body opportunities.CreateOpportunityRequest true "Opportunity data"
// @Success 201 {object} ent.Opportunity
// @Failure 400 {object} models.ErrorResponse
// @Router /opportunities [post]
func (h *OpportunityHandler) CreateOpportunity(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req opportunities.CreateOpportunityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, userID := requestScope(c)
	created, err := h.opps.Create(ctx, orgID, userID, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create opportunity"})
	}

	return c.JSON(http.StatusCreated, created)
}

// ListOpportunities godoc
// @Summary List opportunities
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param stage query string false "Filter by stage"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} ent.Opportunity
// @Router /opportunities [get]
func (h *OpportunityHandler) ListOpportunities(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	result, err := h.opps.List(ctx, orgID, c.QueryParam("stage"), queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list opportunities"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetOpportunity godoc
// @Summary Get an opportunity
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Success 200 {object} ent.Opportunity
// @Failure 404 {object} models.ErrorResponse
// @Router /opportunities/{id} [get]
func (h *OpportunityHandler) GetOpportunity(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid opportunity ID"})
	}

	orgID, _ := requestScope(c)
	opp, err := h.opps.Get(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, opportunities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Opportunity not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch opportunity"})
	}

	return c.JSON(http.StatusOK, opp)
}

// UpdateOpportunity godoc
// @Summary Update an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Param request body opportunities.UpdateOpportunityRequest true "Fields to update"
// @Success 200 {object} ent.Opportunity
// @Failure 404 {object} models.ErrorResponse
// @Router /opportunities/{id} [put]
func (h *OpportunityHandler) UpdateOpportunity(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid opportunity ID"})
	}

	var req opportunities.UpdateOpportunityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, userID := requestScope(c)
	updated, err := h.opps.Update(ctx, orgID, userID, id, req)
	if err != nil {
		if errors.Is(err, opportunities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Opportunity not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update opportunity"})
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteOpportunity godoc
// @Summary Delete an opportunity
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /opportunities/{id} [delete]
func (h *OpportunityHandler) DeleteOpportunity(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid opportunity ID"})
	}

	orgID, _ := requestScope(c)
	if err := h.opps.Delete(ctx, orgID, id); err != nil {
		if errors.Is(err, opportunities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Opportunity not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete opportunity"})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Opportunity deleted"})
}

// PipelineValue godoc
// @Summary Open pipeline value
// @Description Sums the amounts of open opportunities, excluding won and lost
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]float64
// @Router /opportunities/pipeline [get]
func (h *OpportunityHandler) PipelineValue(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	total, err := h.opps.PipelineValue(ctx, orgID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to compute pipeline value"})
	}

	return c.JSON(http.StatusOK, map[string]float64{"pipeline_value": total})
}
