package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/pkg/models"
	"github.com/sannty/salescrm/pkg/organization"
)

// OrganizationHandler handles organization HTTP endpoints
type OrganizationHandler struct {
	orgs      *organization.Service
	validator *validator.Validate
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(orgSvc *organization.Service) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgSvc, validator: validator.New()}
}

// addMemberRequest carries a membership change.
type addMemberRequest struct {
	UserID int    `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=admin manager sales_rep"`
}

// CreateOrganization godoc
// @Summary Create an organization
// @Description Creates the organization and makes the caller its admin
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body organization.CreateRequest true "Organization data"
// @Success 201 {object} ent.Organization
// @Failure 409 {object} models.ErrorResponse
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req organization.CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	userID, _ := c.Get("user_id").(int)
	org, err := h.orgs.Create(ctx, userID, req)
	if err != nil {
		if errors.Is(err, organization.ErrAlreadyMember) {
			return c.JSON(http.StatusConflict, models.ErrorResponse{Error: "User already belongs to an organization"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create organization"})
	}

	return c.JSON(http.StatusCreated, org)
}

// GetOrganization godoc
// @Summary Get the caller's organization
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ent.Organization
// @Failure 404 {object} models.ErrorResponse
// @Router /organizations/current [get]
func (h *OrganizationHandler) GetOrganization(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	org, err := h.orgs.Get(ctx, orgID)
	if err != nil {
		if errors.Is(err, organization.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Organization not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch organization"})
	}

	return c.JSON(http.StatusOK, org)
}

// ListMembers godoc
// @Summary List organization members
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ent.User
// @Router /organizations/current/members [get]
func (h *OrganizationHandler) ListMembers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	members, err := h.orgs.Members(ctx, orgID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list members"})
	}

	return c.JSON(http.StatusOK, members)
}

// AddMember godoc
// @Summary Add a user to the organization
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.addMemberRequest true "Membership data"
// @Success 200 {object} ent.User
// @Failure 409 {object} models.ErrorResponse
// @Router /organizations/current/members [post]
func (h *OrganizationHandler) AddMember(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req addMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, _ := requestScope(c)
	member, err := h.orgs.AddMember(ctx, orgID, req.UserID, req.Role)
	if err != nil {
		if errors.Is(err, organization.ErrAlreadyMember) {
			return c.JSON(http.StatusConflict, models.ErrorResponse{Error: "User already belongs to an organization"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add member"})
	}

	return c.JSON(http.StatusOK, member)
}

// RemoveMember godoc
// @Summary Remove a user from the organization
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /organizations/current/members/{id} [delete]
func (h *OrganizationHandler) RemoveMember(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid user ID"})
	}

	orgID, _ := requestScope(c)
	if err := h.orgs.RemoveMember(ctx, orgID, id); err != nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "User is not a member"})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Member removed"})
}
