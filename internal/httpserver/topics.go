package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edupract/exam_platform/internal/logging"
	"github.com/edupract/exam_platform/internal/service"
	"github.com/edupract/exam_platform/internal/transport"
)

type TopicHTTP struct {
	Svc *service.TopicService
}

func (h *TopicHTTP) List(c echo.Context) error {
	topics, err := h.Svc.List(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_topics_failed", "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, topics)
}

func (h *TopicHTTP) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	topic, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, topic)
}

func (h *TopicHTTP) Create(c echo.Context) error {
	var req transport.TopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	topic, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		httpErr := toHTTPError(err)
		if httpErr.Code == http.StatusInternalServerError {
			logging.FromContext(c.Request().Context()).Error("create_topic_failed", "error", err)
		}
		return httpErr
	}
	return c.JSON(http.StatusCreated, topic)
}

func (h *TopicHTTP) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req transport.TopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	topic, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, topic)
}

func (h *TopicHTTP) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		logging.FromContext(c.Request().Context()).Error("delete_topic_failed", "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: fmt.Sprintf("topic %d deleted", id),
	})
}
