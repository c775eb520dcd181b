package services

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/socially/backend/internal/models"
	"github.com/anonto42/socially/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike_IsAPureFlip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.CreateUser(t, f.db, "u1", "alice")
	testutil.CreateUser(t, f.db, "u2", "bob")
	post := testutil.CreatePost(t, f.db, "u2", "hello")

	require.True(t, f.posts.ToggleLike(ctx, subject("u1"), post.ID).Success)
	assert.EqualValues(t, 1, testutil.Count(t, f.db, &models.Like{}, "user_id = ? AND post_id = ?", "u1", post.ID))

	var notification models.Notification
	require.NoError(t, f.db.Where("type = ?", models.NotificationLike).Take(&notification).Error)
	assert.Equal(t, "u2", notification.UserID)
	assert.Equal(t, "u1", notification.CreatorID)
	require.NotNil(t, notification.PostID)
	assert.Equal(t, post.ID, *notification.PostID)

	require.True(t, f.posts.ToggleLike(ctx, subject("u1"), post.ID).Success)
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Like{}))
	assert.EqualValues(t, 1, testutil.Count(t, f.db, &models.Notification{}))
	assert.Equal(t, []string{"/", "/"}, f.revalidator.Paths())
}

func TestToggleLike_OwnPostCreatesNoNotification(t *testing.T) {
	f := newFixture(t)
	testutil.CreateUser(t, f.db, "u1", "alice")
	post := testutil.CreatePost(t, f.db, "u1", "mine")

	require.True(t, f.posts.ToggleLike(context.Background(), subject("u1"), post.ID).Success)
	assert.EqualValues(t, 1, testutil.Count(t, f.db, &models.Like{}))
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Notification{}))
}

func TestToggleLike_MissingPost(t *testing.T) {
	f := newFixture(t)
	testutil.CreateUser(t, f.db, "u1", "alice")

	res := f.posts.ToggleLike(context.Background(), subject("u1"), "missing")
	assert.False(t, res.Success)
	assert.Equal(t, FailureNotFound, res.Kind)
	assert.Empty(t, f.revalidator.Paths())
}

func TestToggleLike_NotificationFailureLeavesNoLike(t *testing.T) {
	f := newFixture(t)
	testutil.CreateUser(t, f.db, "u1", "alice")
	testutil.CreateUser(t, f.db, "u2", "bob")
	post := testutil.CreatePost(t, f.db, "u2", "hello")
	testutil.FailInsertsInto(t, f.db, "notifications")

	res := f.posts.ToggleLike(context.Background(), subject("u1"), post.ID)
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to toggle like", res.Error)
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Like{}))
}

func TestCreatePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.CreateUser(t, f.db, "u1", "alice")

	res := f.posts.CreatePost(ctx, subject("u1"), "  first post  ", "")
	require.True(t, res.Success, res.Error)
	require.NotNil(t, res.Post)
	assert.NotEmpty(t, res.Post.ID)
	assert.Equal(t, "first post", res.Post.Content)
	assert.Equal(t, "u1", res.Post.AuthorID)

	imageOnly := f.posts.CreatePost(ctx, subject("u1"), "", "https://img.example.com/a.png")
	assert.True(t, imageOnly.Success)

	empty := f.posts.CreatePost(ctx, subject("u1"), "   ", "")
	assert.False(t, empty.Success)
	assert.Equal(t, FailureInvalid, empty.Kind)
	assert.Nil(t, empty.Post)

	assert.EqualValues(t, 2, testutil.Count(t, f.db, &models.Post{}))
}

func TestGetPosts_NewestFirstWithCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.CreateUser(t, f.db, "u1", "alice")
	testutil.CreateUser(t, f.db, "u2", "bob")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	older := &models.Post{AuthorID: "u1", Content: "older", CreatedAt: base}
	newer := &models.Post{AuthorID: "u2", Content: "newer", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, f.store.Posts.CreatePost(ctx, older))
	require.NoError(t, f.store.Posts.CreatePost(ctx, newer))

	require.True(t, f.posts.ToggleLike(ctx, subject("u2"), older.ID).Success)
	require.True(t, f.posts.ToggleLike(ctx, subject("u1"), older.ID).Success)
	require.True(t, f.posts.CreateComment(ctx, subject("u2"), older.ID, "nice").Success)

	posts := f.posts.GetPosts(ctx)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)

	assert.EqualValues(t, 2, posts[1].LikesCount)
	assert.EqualValues(t, 1, posts[1].CommentsCount)
	assert.Len(t, posts[1].Likes, 2)
	require.Len(t, posts[1].Comments, 1)
	require.NotNil(t, posts[1].Comments[0].Author)
	assert.Equal(t, "bob", posts[1].Comments[0].Author.Username)
	require.NotNil(t, posts[1].Author)
	assert.Equal(t, "alice", posts[1].Author.Username)
	assert.EqualValues(t, 0, posts[0].LikesCount)
}

func TestGetUserPostsAndLikedPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.CreateUser(t, f.db, "u1", "alice")
	testutil.CreateUser(t, f.db, "u2", "bob")
	mine := testutil.CreatePost(t, f.db, "u1", "mine")
	theirs := testutil.CreatePost(t, f.db, "u2", "theirs")

	require.True(t, f.posts.ToggleLike(ctx, subject("u1"), theirs.ID).Success)

	own := f.posts.GetUserPosts(ctx, "u1")
	require.Len(t, own, 1)
	assert.Equal(t, mine.ID, own[0].ID)

	liked := f.posts.GetUserLikedPosts(ctx, "u1")
	require.Len(t, liked, 1)
	assert.Equal(t, theirs.ID, liked[0].ID)

	assert.NotNil(t, f.posts.GetUserLikedPosts(ctx, "nobody"))
	assert.Empty(t, f.posts.GetUserLikedPosts(ctx, "nobody"))
}

func TestCreateComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.CreateUser(t, f.db, "u1", "alice")
	testutil.CreateUser(t, f.db, "u2", "bob")
	post := testutil.CreatePost(t, f.db, "u2", "hello")

	res := f.posts.CreateComment(ctx, subject("u1"), post.ID, "  great post ")
	require.True(t, res.Success, res.Error)
	require.NotNil(t, res.Comment)
	assert.Equal(t, "great post", res.Comment.Content)

	var notification models.Notification
	require.NoError(t, f.db.Where("type = ?", models.NotificationComment).Take(&notification).Error)
	assert.Equal(t, "u2", notification.UserID)
	assert.Equal(t, "u1", notification.CreatorID)
	require.NotNil(t, notification.CommentID)
	assert.Equal(t, res.Comment.ID, *notification.CommentID)
	require.NotNil(t, notification.PostID)
	assert.Equal(t, post.ID, *notification.PostID)
}

func TestCreateComment_OwnPostAndBlankContent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.CreateUser(t, f.db, "u1", "alice")
	post := testutil.CreatePost(t, f.db, "u1", "hello")

	require.True(t, f.posts.CreateComment(ctx, subject("u1"), post.ID, "replying to myself").Success)
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Notification{}))

	blank := f.posts.CreateComment(ctx, subject("u1"), post.ID, " \n\t ")
	assert.False(t, blank.Success)
	assert.Equal(t, FailureInvalid, blank.Kind)
	assert.EqualValues(t, 1, testutil.Count(t, f.db, &models.Comment{}))
}

func TestCreateComment_NotificationFailureLeavesNoComment(t *testing.T) {
	f := newFixture(t)
	testutil.CreateUser(t, f.db, "u1", "alice")
	testutil.CreateUser(t, f.db, "u2", "bob")
	post := testutil.CreatePost(t, f.db, "u2", "hello")
	testutil.FailInsertsInto(t, f.db, "notifications")

	res := f.posts.CreateComment(context.Background(), subject("u1"), post.ID, "hi")
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to create comment", res.Error)
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Comment{}))
}

func TestDeletePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.CreateUser(t, f.db, "u1", "alice")
	testutil.CreateUser(t, f.db, "u2", "bob")
	post := testutil.CreatePost(t, f.db, "u1", "short lived")

	require.True(t, f.posts.ToggleLike(ctx, subject("u2"), post.ID).Success)
	require.True(t, f.posts.CreateComment(ctx, subject("u2"), post.ID, "hey").Success)

	forbidden := f.posts.DeletePost(ctx, subject("u2"), post.ID)
	assert.False(t, forbidden.Success)
	assert.Equal(t, FailureForbidden, forbidden.Kind)
	assert.EqualValues(t, 1, testutil.Count(t, f.db, &models.Post{}))

	require.True(t, f.posts.DeletePost(ctx, subject("u1"), post.ID).Success)
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Post{}))
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Like{}))
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Comment{}))
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Notification{}))

	missing := f.posts.DeletePost(ctx, subject("u1"), post.ID)
	assert.Equal(t, FailureNotFound, missing.Kind)
}
