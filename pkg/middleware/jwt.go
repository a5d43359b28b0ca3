package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sannty/salescrm/pkg/auth"
	"github.com/sannty/salescrm/pkg/models"
)

// JWTMiddleware validates the Authorization bearer token, rejects revoked
// tokens, and stores the authenticated identity on the echo context under
// "user_id", "user_role" and "organization_id".
func JWTMiddleware(secret string, blacklist *auth.TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Missing Authorization header",
				})
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authorization header must be a Bearer token",
				})
			}

			claims, err := auth.ValidateJWTWithBlacklist(c.Request().Context(), token, secret, blacklist)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Invalid or expired token",
				})
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_role", claims.Role)
			c.Set("token", token)
			if claims.OrganizationID != nil {
				c.Set("organization_id", *claims.OrganizationID)
			}

			return next(c)
		}
	}
}

// RequireOrganization rejects authenticated users that do not belong to an
// organization yet. All tenant-scoped routes sit behind this check.
func RequireOrganization() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get("organization_id").(int); !ok {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "no_organization",
					Message: "Please contact your company's administrator to be added to an organization.",
				})
			}
			return next(c)
		}
	}
}

// RequireRole rejects users whose role is not in the allowed set.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("user_role").(string)
			if !allowed[role] {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "forbidden",
					Message: "You do not have permission to perform this action.",
				})
			}
			return next(c)
		}
	}
}
