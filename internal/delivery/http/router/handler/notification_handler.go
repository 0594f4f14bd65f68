package handler

import (
	"net/http"
	"strconv"

	"washify/internal/delivery/http/response"
	"washify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler serves the notification bell feed.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// UnreadCount returns the badge number.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count := h.uc.UnreadCount(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]int{"count": count}, "OK")
}

// List returns a page of the feed, newest first.
func (h *NotificationHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	env := h.uc.List(c.Request().Context(), page, size)

	return response.Success(c, http.StatusOK, env.Data, env.Message)
}

// MarkRead dismisses one notification.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	if err := h.uc.MarkRead(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "OK")
}

// MarkAllRead dismisses the whole feed.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.uc.MarkAllRead(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "OK")
}
