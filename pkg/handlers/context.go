package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// requestScope pulls the authenticated user and organization out of the echo
// context. The JWT and organization middleware guarantee both are present on
// protected routes.
func requestScope(c echo.Context) (orgID, userID int) {
	orgID, _ = c.Get("organization_id").(int)
	userID, _ = c.Get("user_id").(int)
	return orgID, userID
}

func pathID(c echo.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func queryIntPtr(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
