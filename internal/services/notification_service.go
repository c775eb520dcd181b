package services

import (
	"context"
	"errors"

	"github.com/anonto42/socially/backend/internal/models"
	"github.com/anonto42/socially/backend/internal/repositories"
	"go.uber.org/zap"
)

// NotificationService reads and acknowledges notifications
type NotificationService struct {
	store  *repositories.Store
	users  *UserService
	logger *zap.Logger
}

func NewNotificationService(store *repositories.Store, users *UserService, logger *zap.Logger) *NotificationService {
	return &NotificationService{store: store, users: users, logger: logger}
}

// GetNotifications returns the caller's notifications, newest first.
// It is empty, never nil, when the caller is unknown or the read fails.
func (s *NotificationService) GetNotifications(ctx context.Context, subject string) []models.NotificationView {
	userID, err := s.users.ResolveUserID(ctx, subject)
	if err != nil {
		s.readFailed("get notifications", err)
		return []models.NotificationView{}
	}
	notifications, err := s.store.Notifications.GetByRecipientID(ctx, userID)
	if err != nil {
		s.readFailed("get notifications", err)
		return []models.NotificationView{}
	}

	views := make([]models.NotificationView, 0, len(notifications))
	for i := range notifications {
		views = append(views, notifications[i].ToView())
	}
	return views
}

// GetUnreadCount returns how many of the caller's notifications are unread
func (s *NotificationService) GetUnreadCount(ctx context.Context, subject string) int64 {
	userID, err := s.users.ResolveUserID(ctx, subject)
	if err != nil {
		s.readFailed("get unread count", err)
		return 0
	}
	count, err := s.store.Notifications.GetUnreadCount(ctx, userID)
	if err != nil {
		s.readFailed("get unread count", err)
		return 0
	}
	return count
}

// MarkNotificationsAsRead flags every listed notification as read. Unknown ids are skipped
// and ownership of the ids is not checked.
func (s *NotificationService) MarkNotificationsAsRead(ctx context.Context, ids []string) Result {
	updated, err := s.store.Notifications.MarkAsRead(ctx, ids)
	if err != nil {
		return failed(s.logger, "mark notifications read", "Failed to mark notifications as read", err)
	}
	s.logger.Debug("notifications marked read", zap.Int("requested", len(ids)), zap.Int64("updated", updated))
	return succeeded()
}

func (s *NotificationService) readFailed(op string, err error) {
	if errors.Is(err, ErrUnresolvedIdentity) {
		s.logger.Debug(op+": caller not resolved", zap.Error(err))
		return
	}
	s.logger.Error(op+" failed", zap.Error(err))
}
