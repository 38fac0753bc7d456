package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edupract/exam_platform/internal/logging"
	"github.com/edupract/exam_platform/internal/service"
	"github.com/edupract/exam_platform/internal/transport"
)

type CourseHTTP struct {
	Svc *service.CourseService
}

func (h *CourseHTTP) List(c echo.Context) error {
	courses, err := h.Svc.List(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_courses_failed", "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, courses)
}

func (h *CourseHTTP) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	course, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, course)
}

func (h *CourseHTTP) Create(c echo.Context) error {
	var req transport.CourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	course, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		httpErr := toHTTPError(err)
		if httpErr.Code == http.StatusInternalServerError {
			logging.FromContext(c.Request().Context()).Error("create_course_failed", "error", err)
		}
		return httpErr
	}
	return c.JSON(http.StatusCreated, course)
}

func (h *CourseHTTP) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req transport.CourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	course, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, course)
}

func (h *CourseHTTP) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		logging.FromContext(c.Request().Context()).Error("delete_course_failed", "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: fmt.Sprintf("course %d deleted", id),
	})
}
