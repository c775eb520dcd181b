package services

import (
	"context"

	"github.com/anonto42/socially/backend/internal/models"
	"github.com/anonto42/socially/backend/internal/repositories"
	"go.uber.org/zap"
)

// FollowService toggles follow edges
type FollowService struct {
	store       *repositories.Store
	users       *UserService
	revalidator Revalidator
	logger      *zap.Logger
}

func NewFollowService(store *repositories.Store, users *UserService, revalidator Revalidator, logger *zap.Logger) *FollowService {
	return &FollowService{store: store, users: users, revalidator: revalidator, logger: logger}
}

// ToggleFollow removes the caller's edge to targetUserID if there is one. Otherwise it
// creates the edge and a FOLLOW notification for the target in one transaction.
func (s *FollowService) ToggleFollow(ctx context.Context, subject, targetUserID string) Result {
	if err := s.toggleFollow(ctx, subject, targetUserID); err != nil {
		return failed(s.logger, "toggle follow", "Error toggling follow", err)
	}
	s.revalidator.Revalidate(ctx, "/")
	return succeeded()
}

func (s *FollowService) toggleFollow(ctx context.Context, subject, targetUserID string) error {
	userID, err := s.users.ResolveUserID(ctx, subject)
	if err != nil {
		return err
	}
	if userID == targetUserID {
		return ErrSelfFollow
	}

	following, err := s.store.Follows.IsFollowing(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if following {
		return s.store.Follows.DeleteFollow(ctx, userID, targetUserID)
	}

	return s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Follows.CreateFollow(ctx, &models.Follow{
			FollowerID:  userID,
			FollowingID: targetUserID,
		}); err != nil {
			return err
		}
		return tx.Notifications.CreateNotification(ctx, &models.Notification{
			Type:      models.NotificationFollow,
			UserID:    targetUserID,
			CreatorID: userID,
		})
	})
}
