package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anonto42/socially/backend/internal/models"
	"github.com/anonto42/socially/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const suggestedUsersLimit = 3

// UserService covers the local user directory
type UserService struct {
	store  *repositories.Store
	logger *zap.Logger
}

func NewUserService(store *repositories.Store, logger *zap.Logger) *UserService {
	return &UserService{store: store, logger: logger}
}

// SyncUser mirrors the identity into a local user the first time it is seen.
// An existing user is returned untouched even if the provider profile changed.
func (s *UserService) SyncUser(ctx context.Context, identity models.Identity) (*models.User, error) {
	if identity.Subject == "" {
		return nil, ErrUnresolvedIdentity
	}

	existing, err := s.store.Users.GetUserByProviderID(ctx, identity.Subject)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("sync user lookup failed", zap.String("subject", identity.Subject), zap.Error(err))
		return nil, err
	}

	username := identity.Username
	if username == "" {
		username, _, _ = strings.Cut(identity.Email, "@")
	}
	user := &models.User{
		ProviderID: identity.Subject,
		Name:       strings.TrimSpace(identity.Name),
		Username:   username,
		Email:      identity.Email,
		Image:      identity.Image,
	}
	if err := s.store.Users.CreateUser(ctx, user); err != nil {
		s.logger.Error("sync user create failed", zap.String("subject", identity.Subject), zap.Error(err))
		return nil, err
	}
	s.logger.Info("user synced", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// ResolveUserID maps an identity provider subject to the local user id
func (s *UserService) ResolveUserID(ctx context.Context, subject string) (string, error) {
	if subject == "" {
		return "", ErrUnresolvedIdentity
	}
	user, err := s.store.Users.GetUserByProviderID(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: subject %s", ErrUnresolvedIdentity, subject)
		}
		return "", err
	}
	return user.ID, nil
}

// GetUserByProviderID returns the profile with counts, or nil
func (s *UserService) GetUserByProviderID(ctx context.Context, subject string) *models.User {
	user, err := s.store.Users.GetProfileByProviderID(ctx, subject)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get user by provider id failed", zap.Error(err))
		}
		return nil
	}
	return user
}

// GetProfileByUsername returns the profile with counts, or nil
func (s *UserService) GetProfileByUsername(ctx context.Context, username string) *models.User {
	user, err := s.store.Users.GetProfileByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get profile failed", zap.String("username", username), zap.Error(err))
		}
		return nil
	}
	return user
}

// GetRandomUsers suggests users to follow: never the caller, never someone already followed
func (s *UserService) GetRandomUsers(ctx context.Context, subject string) []models.SuggestedUser {
	userID, err := s.ResolveUserID(ctx, subject)
	if err != nil {
		s.readFailed("get random users", err)
		return []models.SuggestedUser{}
	}
	users, err := s.store.Users.GetSuggestedUsers(ctx, userID, suggestedUsersLimit)
	if err != nil {
		s.readFailed("get random users", err)
		return []models.SuggestedUser{}
	}
	return users
}

// IsFollowing reports whether the caller follows targetUserID
func (s *UserService) IsFollowing(ctx context.Context, subject, targetUserID string) bool {
	userID, err := s.ResolveUserID(ctx, subject)
	if err != nil {
		s.readFailed("is following", err)
		return false
	}
	following, err := s.store.Follows.IsFollowing(ctx, userID, targetUserID)
	if err != nil {
		s.readFailed("is following", err)
		return false
	}
	return following
}

func (s *UserService) readFailed(op string, err error) {
	if errors.Is(err, ErrUnresolvedIdentity) {
		s.logger.Debug(op+": caller not resolved", zap.Error(err))
		return
	}
	s.logger.Error(op+" failed", zap.Error(err))
}
