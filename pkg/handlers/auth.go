package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/config"
	"github.com/sannty/salescrm/pkg/auth"
	"github.com/sannty/salescrm/pkg/models"
	"github.com/sannty/salescrm/pkg/users"
)

// AuthHandler handles registration, login and session management
type AuthHandler struct {
	users     *users.Service
	blacklist *auth.TokenBlacklist
	cfg       *config.Config
	validator *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userSvc *users.Service, blacklist *auth.TokenBlacklist, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		users:     userSvc,
		blacklist: blacklist,
		cfg:       cfg,
		validator: validator.New(),
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	u, err := h.users.Register(ctx, req)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to register user"})
	}

	token, err := auth.GenerateJWT(u.ID, u.Email, string(u.Role), u.OrganizationID, h.cfg.JWTSecret, h.cfg.JWTExpirationHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate token"})
	}

	info := users.UserInfo(u)
	return c.JSON(http.StatusCreated, models.AuthResponse{Token: token, User: &info})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	u, err := h.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to log in"})
	}

	token, err := auth.GenerateJWT(u.ID, u.Email, string(u.Role), u.OrganizationID, h.cfg.JWTSecret, h.cfg.JWTExpirationHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate token"})
	}

	info := users.UserInfo(u)
	return c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: &info})
}

// Logout godoc
// @Summary Log out
// @Description Blacklists the current token until it expires
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	token, _ := c.Get("token").(string)
	if token != "" {
		ttl := time.Duration(h.cfg.JWTExpirationHours) * time.Hour
		if err := h.blacklist.Add(ctx, token, ttl); err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to log out"})
		}
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Logged out"})
}

// Me godoc
// @Summary Current user
// @Description Returns the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserInfo
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, _ := c.Get("user_id").(int)
	u, err := h.users.Get(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
	}

	return c.JSON(http.StatusOK, users.UserInfo(u))
}

// ChangePassword godoc
// @Summary Change password
// @Description Verifies the current password and stores a new one
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChangePasswordRequest true "Password change"
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	userID, _ := c.Get("user_id").(int)
	if err := h.users.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Current password is incorrect"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to change password"})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Password changed"})
}
