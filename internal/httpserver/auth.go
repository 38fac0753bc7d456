package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edupract/exam_platform/internal/logging"
	"github.com/edupract/exam_platform/internal/service"
	"github.com/edupract/exam_platform/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

// Login answers POST /api/auth/login. Success is 200 with
// {token, user:{id,email,name,role}}; bad credentials are 401 with one
// unified message regardless of which check failed.
func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		httpErr := toHTTPError(err)
		if httpErr.Code == http.StatusInternalServerError {
			l.Error("login_failed", "status", httpErr.Code, "error", err)
		}
		return httpErr
	}

	return c.JSON(http.StatusOK, res)
}
