package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/pkg/accounts"
	"github.com/sannty/salescrm/pkg/models"
)

// AccountHandler handles account HTTP endpoints
type AccountHandler struct {
	accounts  *accounts.Service
	validator *validator.Validate
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountSvc *accounts.Service) *AccountHandler {
	return &AccountHandler{accounts: accountSvc, validator: validator.New()}
}

// CreateAccount godoc
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body accounts.CreateAccountRequest true "Account data"
// @Success 201 {object} ent.Account
// @Failure 400 {object} models.ErrorResponse
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req accounts.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, _ := requestScope(c)
	created, err := h.accounts.Create(ctx, orgID, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create account"})
	}

	return c.JSON(http.StatusCreated, created)
}

// ListAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} ent.Account
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	result, err := h.accounts.List(ctx, orgID, queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list accounts"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetAccount godoc
// @Summary Get an account with its contacts
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} ent.Account
// @Failure 404 {object} models.ErrorResponse
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid account ID"})
	}

	orgID, _ := requestScope(c)
	a, err := h.accounts.Get(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Account not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch account"})
	}

	return c.JSON(http.StatusOK, a)
}

// UpdateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Param request body accounts.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} ent.Account
// @Failure 404 {object} models.ErrorResponse
// @Router /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid account ID"})
	}

	var req accounts.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, _ := requestScope(c)
	updated, err := h.accounts.Update(ctx, orgID, id, req)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Account not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update account"})
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteAccount godoc
// @Summary Delete an account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid account ID"})
	}

	orgID, _ := requestScope(c)
	if err := h.accounts.Delete(ctx, orgID, id); err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Account not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete account"})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Account deleted"})
}
