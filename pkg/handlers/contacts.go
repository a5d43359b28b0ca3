package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/pkg/contacts"
	"github.com/sannty/salescrm/pkg/models"
)

// ContactHandler handles contact HTTP endpoints
type ContactHandler struct {
	contacts  *contacts.Service
	validator *validator.Validate
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactSvc *contacts.Service) *ContactHandler {
	return &ContactHandler{contacts: contactSvc, validator: validator.New()}
}

// CreateContact godoc
// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body contacts.CreateContactRequest true "Contact data"
// @Success 201 {object} ent.Contact
// @Failure 400 {object} models.ErrorResponse
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req contacts.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, _ := requestScope(c)
	created, err := h.contacts.Create(ctx, orgID, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create contact"})
	}

	return c.JSON(http.StatusCreated, created)
}

// ListContacts godoc
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param account_id query int false "Filter by account"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} ent.Contact
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	result, err := h.contacts.List(ctx, orgID, queryIntPtr(c, "account_id"), queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list contacts"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetContact godoc
// @Summary Get a contact
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} ent.Contact
// @Failure 404 {object} models.ErrorResponse
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid contact ID"})
	}

	orgID, _ := requestScope(c)
	ct, err := h.contacts.Get(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, contacts.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Contact not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch contact"})
	}

	return c.JSON(http.StatusOK, ct)
}

// UpdateContact godoc
// @Summary Update a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body contacts.UpdateContactRequest true "Fields to update"
// @Success 200 {object} ent.Contact
// @Failure 404 {object} models.ErrorResponse
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid contact ID"})
	}

	var req contacts.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, _ := requestScope(c)
	updated, err := h.contacts.Update(ctx, orgID, id, req)
	if err != nil {
		if errors.Is(err, contacts.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Contact not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update contact"})
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteContact godoc
// @Summary Delete a contact
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid contact ID"})
	}

	orgID, _ := requestScope(c)
	if err := h.contacts.Delete(ctx, orgID, id); err != nil {
		if errors.Is(err, contacts.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Contact not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete contact"})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Contact deleted"})
}
