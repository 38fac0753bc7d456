package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edupract/exam_platform/internal/logging"
	"github.com/edupract/exam_platform/internal/service"
	"github.com/edupract/exam_platform/internal/transport"
	"github.com/edupract/exam_platform/internal/upload"
)

type ExerciseHTTP struct {
	Svc    *service.ExerciseService
	Upload *upload.Store
}

func (h *ExerciseHTTP) List(c echo.Context) error {
	exercises, err := h.Svc.List(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_exercises_failed", "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, exercises)
}

func (h *ExerciseHTTP) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	exercise, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, exercise)
}

func (h *ExerciseHTTP) Create(c echo.Context) error {
	var req transport.ExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	exercise, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		httpErr := toHTTPError(err)
		if httpErr.Code == http.StatusInternalServerError {
			logging.FromContext(c.Request().Context()).Error("create_exercise_failed", "error", err)
		}
		return httpErr
	}
	return c.JSON(http.StatusCreated, exercise)
}

func (h *ExerciseHTTP) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req transport.ExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	exercise, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, exercise)
}

func (h *ExerciseHTTP) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		logging.FromContext(c.Request().Context()).Error("delete_exercise_failed", "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: fmt.Sprintf("exercise %d deleted", id),
	})
}

// UploadFile stores a multipart exercise image and answers with its public
// URL. The store is opaque to callers; only the URL is wire-visible.
func (h *ExerciseHTTP) UploadFile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "exercise_upload")

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}

	name, err := h.Upload.Save(fh)
	if err != nil {
		l.Error("upload_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	l.Info("file uploaded", "name", name, "size", fh.Size)
	return c.JSON(http.StatusOK, transport.UploadResponse{URL: "/uploads/" + name})
}
