package client

import (
	"context"

	"github.com/anonto42/socially/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockActions is a mock implementation of Actions
type MockActions struct {
	mock.Mock
}

func (m *MockActions) ToggleLike(ctx context.Context, postID string) Result {
	return m.Called(ctx, postID).Get(0).(Result)
}

func (m *MockActions) CreateComment(ctx context.Context, postID, content string) Result {
	return m.Called(ctx, postID, content).Get(0).(Result)
}

func (m *MockActions) DeletePost(ctx context.Context, postID string) Result {
	return m.Called(ctx, postID).Get(0).(Result)
}

func (m *MockActions) ToggleFollow(ctx context.Context, userID string) Result {
	return m.Called(ctx, userID).Get(0).(Result)
}

func (m *MockActions) MarkNotificationsAsRead(ctx context.Context, ids []string) Result {
	return m.Called(ctx, ids).Get(0).(Result)
}

func (m *MockActions) GetPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockActions) GetNotifications(ctx context.Context) ([]models.NotificationView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NotificationView), args.Error(1)
}

type recordingToaster struct {
	successes []string
	errors    []string
}

func (r *recordingToaster) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recordingToaster) Error(msg string)   { r.errors = append(r.errors, msg) }
