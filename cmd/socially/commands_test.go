package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/anonto42/socially/backend/internal/client"
	"github.com/anonto42/socially/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActions struct {
	posts         []models.Post
	notifications []models.NotificationView
	toggleResult  client.Result
	liked         []string
	markedRead    []string
	comments      []string
}

func (f *fakeActions) ToggleLike(_ context.Context, postID string) client.Result {
	f.liked = append(f.liked, postID)
	return f.toggleResult
}

func (f *fakeActions) CreateComment(_ context.Context, _, content string) client.Result {
	f.comments = append(f.comments, content)
	return client.Result{Success: true}
}

func (f *fakeActions) DeletePost(context.Context, string) client.Result {
	return client.Result{Success: true}
}

func (f *fakeActions) ToggleFollow(context.Context, string) client.Result {
	return client.Result{Error: "You cannot follow yourself"}
}

func (f *fakeActions) MarkNotificationsAsRead(_ context.Context, ids []string) client.Result {
	f.markedRead = append(f.markedRead, ids...)
	return client.Result{Success: true}
}

func (f *fakeActions) GetPosts(context.Context) ([]models.Post, error) {
	return f.posts, nil
}

func (f *fakeActions) GetNotifications(context.Context) ([]models.NotificationView, error) {
	return f.notifications, nil
}

func run(t *testing.T, actions client.Actions, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out, actions)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFeedAndLike(t *testing.T) {
	actions := &fakeActions{
		toggleResult: client.Result{Success: true},
		posts: []models.Post{{
			ID:         "p1",
			Content:    "hello",
			Author:     &models.User{Username: "bob"},
			Likes:      []models.Like{{UserID: "u1", PostID: "p1"}},
			LikesCount: 1,
			CreatedAt:  time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC),
		}},
	}

	out, err := run(t, actions, "feed", "--user-id", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "@bob")
	assert.Contains(t, out, "♥ 1")

	out, err = run(t, actions, "like", "p1", "--user-id", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "liked=false likes=0 (confirmed)")
	assert.Equal(t, []string{"p1"}, actions.liked)
}

func TestLikeFailureRollsBack(t *testing.T) {
	actions := &fakeActions{
		toggleResult: client.Result{Error: "Failed to toggle like"},
		posts:        []models.Post{{ID: "p1", LikesCount: 3}},
	}

	out, err := run(t, actions, "like", "p1")
	assert.Error(t, err)
	assert.Contains(t, out, "liked=false likes=3 (rolled-back)")
	assert.Contains(t, out, "[error] Failed to toggle like")
}

func TestCommentAndFollow(t *testing.T) {
	actions := &fakeActions{}

	out, err := run(t, actions, "comment", "p1", "great", "post")
	require.NoError(t, err)
	assert.Equal(t, []string{"great post"}, actions.comments)
	assert.Contains(t, out, "[ok] Comment posted successfully")

	out, err = run(t, actions, "follow", "u1")
	assert.Error(t, err)
	assert.Contains(t, out, "[error] Error following user")
}

func TestNotificationsMarkRead(t *testing.T) {
	actions := &fakeActions{
		notifications: []models.NotificationView{
			{ID: "n2", Type: models.NotificationLike, Creator: models.UserCompact{Username: "alice"}, Post: &models.PostSummary{ID: "p1", Content: "hello"}},
			{ID: "n1", Type: models.NotificationFollow, Read: true, Creator: models.UserCompact{Username: "carol"}},
		},
	}

	out, err := run(t, actions, "notifications", "--mark-read")
	require.NoError(t, err)
	assert.Contains(t, out, "@alice liked your post")
	assert.Contains(t, out, "@carol started following you")
	assert.Equal(t, []string{"n2"}, actions.markedRead)
	assert.Contains(t, out, "Marked 1 notifications as read")
}
