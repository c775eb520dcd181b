package handlers

import (
	"net/http"

	"github.com/anonto42/socially/backend/internal/models"
	"github.com/anonto42/socially/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notifications *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.POST("/notifications/read", h.MarkAsRead)
}

// GetNotifications returns the caller's notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	subject, err := subjectFromContext(c)
	if err != nil {
		return err
	}
	notifications := h.notifications.GetNotifications(c.Request().Context(), subject)
	return writeData(c, echo.Map{"notifications": notifications})
}

func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	subject, err := subjectFromContext(c)
	if err != nil {
		return err
	}
	count := h.notifications.GetUnreadCount(c.Request().Context(), subject)
	return writeData(c, echo.Map{"unreadCount": count})
}

// MarkAsRead marks the listed notifications as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	if _, err := subjectFromContext(c); err != nil {
		return err
	}
	var req models.MarkReadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res := h.notifications.MarkNotificationsAsRead(c.Request().Context(), req.IDs)
	return writeResult(c, http.StatusOK, res, nil)
}
