package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialnet/social-api/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the Auth middleware.
// Its absence means a protected route was registered without the middleware;
// fail closed with 401 rather than proceeding without an identity.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
