package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/pkg/activity"
	"github.com/sannty/salescrm/pkg/models"
	"github.com/sannty/salescrm/pkg/opportunities"
)

// ActivityHandler handles the activity timeline HTTP endpoints
type ActivityHandler struct {
	logs      *activity.Service
	feed      *activity.Feed
	opps      *opportunities.Service
	validator *validator.Validate
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(logSvc *activity.Service, feed *activity.Feed, oppSvc *opportunities.Service) *ActivityHandler {
	return &ActivityHandler{logs: logSvc, feed: feed, opps: oppSvc, validator: validator.New()}
}

// logRequest carries a manually recorded interaction.
type logRequest struct {
	Type          string `json:"type" validate:"required,oneof=call email meeting note"`
	Summary       string `json:"summary" validate:"required"`
	LeadID        *int   `json:"lead_id,omitempty"`
	ContactID     *int   `json:"contact_id,omitempty"`
	OpportunityID *int   `json:"opportunity_id,omitempty"`
}

// Dashboard godoc
// @Summary Recent activity feed
// @Description Returns formatted recent activity for the organization, optionally scoped to one user
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "Scope to one user"
// @Param days query int false "Window in days (default 7)"
// @Param limit query int false "Max entries (default 20, cap 100)"
// @Success 200 {array} activity.ActivityView
// @Router /activity/feed [get]
func (h *ActivityHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	feed, err := h.feed.Dashboard(ctx, orgID, queryIntPtr(c, "user_id"), queryInt(c, "days", 0), queryInt(c, "limit", 0))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load activity feed"})
	}

	return c.JSON(http.StatusOK, feed)
}

// LogInteraction godoc
// @Summary Record an interaction manually
// @Tags activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.logRequest true "Interaction data"
// @Success 201 {object} ent.InteractionLog
// @Failure 400 {object} models.ErrorResponse
// @Router /activity [post]
func (h *ActivityHandler) LogInteraction(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req logRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, userID := requestScope(c)
	created, err := h.logs.LogManual(ctx, orgID, userID, req.Type, req.Summary, req.LeadID, req.ContactID, req.OpportunityID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to record interaction"})
	}

	return c.JSON(http.StatusCreated, created)
}

// LeadTimeline godoc
// @Summary Activity for a lead
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {array} ent.InteractionLog
// @Router /leads/{id}/activity [get]
func (h *ActivityHandler) LeadTimeline(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid lead ID"})
	}

	orgID, _ := requestScope(c)
	timeline, err := h.feed.LeadTimeline(ctx, orgID, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load timeline"})
	}

	return c.JSON(http.StatusOK, timeline)
}

// OpportunityTimeline godoc
// @Summary Activity for an opportunity
// @Description Includes entries recorded against the opportunity's primary contact
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Success 200 {array} ent.InteractionLog
// @Failure 404 {object} models.ErrorResponse
// @Router /opportunities/{id}/activity [get]
func (h *ActivityHandler) OpportunityTimeline(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid opportunity ID"})
	}

	orgID, _ := requestScope(c)
	opp, err := h.opps.Get(ctx, orgID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Opportunity not found"})
	}

	timeline, err := h.feed.OpportunityTimeline(ctx, orgID, opp)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load timeline"})
	}

	return c.JSON(http.StatusOK, timeline)
}

// ContactTimeline godoc
// @Summary Activity for a contact
// @Description Includes entries from opportunities where the contact is primary
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {array} ent.InteractionLog
// @Router /contacts/{id}/activity [get]
func (h *ActivityHandler) ContactTimeline(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid contact ID"})
	}

	orgID, _ := requestScope(c)
	timeline, err := h.feed.ContactTimeline(ctx, orgID, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load timeline"})
	}

	return c.JSON(http.StatusOK, timeline)
}

// UserSummary godoc
// @Summary Per-user activity summary
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param days query int false "Window in days (default 30)"
// @Success 200 {object} activity.Summary
// @Router /users/{id}/activity-summary [get]
func (h *ActivityHandler) UserSummary(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid user ID"})
	}

	orgID, _ := requestScope(c)
	summary, err := h.feed.UserSummary(ctx, orgID, id, queryInt(c, "days", 30))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load summary"})
	}

	return c.JSON(http.StatusOK, summary)
}
