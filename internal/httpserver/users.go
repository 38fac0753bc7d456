package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/edupract/exam_platform/internal/logging"
	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/service"
	"github.com/edupract/exam_platform/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user_create")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Create(ctx, req)
	if err != nil {
		httpErr := toHTTPError(err)
		if httpErr.Code == http.StatusInternalServerError {
			l.Error("create_failed", "error", err)
		}
		return httpErr
	}
	return c.JSON(http.StatusCreated, transport.UserToResponse(user))
}

func (h *UserHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user_update")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		httpErr := toHTTPError(err)
		if httpErr.Code == http.StatusInternalServerError {
			l.Error("update_failed", "error", err)
		}
		return httpErr
	}
	return c.JSON(http.StatusOK, transport.UserToResponse(user))
}

func (h *UserHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user_delete")

	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Error("delete_failed", "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: fmt.Sprintf("user %d deleted", id),
	})
}

func (h *UserHTTP) List(c echo.Context) error {
	users, err := h.Svc.List(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_users_failed", "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// listByRole backs the /admins, /teachers and /examinees listings.
func (h *UserHTTP) listByRole(role models.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := h.Svc.ListByRole(c.Request().Context(), role)
		if err != nil {
			logging.FromContext(c.Request().Context()).Error("list_by_role_failed", "role", role, "error", err)
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, users)
	}
}

func (h *UserHTTP) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) getByRole(role models.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}
		user, err := h.Svc.GetByRole(c.Request().Context(), id, role)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, user)
	}
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
