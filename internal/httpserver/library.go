package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edupract/exam_platform/internal/logging"
	"github.com/edupract/exam_platform/internal/service"
)

type LibraryHTTP struct {
	Svc *service.LibraryService
}

func (h *LibraryHTTP) Exams(c echo.Context) error {
	questions, err := h.Svc.Exams(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_exams_failed", "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, questions)
}

func (h *LibraryHTTP) Videos(c echo.Context) error {
	videos, err := h.Svc.Videos(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_videos_failed", "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, videos)
}
