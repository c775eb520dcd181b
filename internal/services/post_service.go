package services

import (
	"context"
	"errors"
	"strings"

	"github.com/anonto42/socially/backend/internal/models"
	"github.com/anonto42/socially/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostResult carries the created post on success
type PostResult struct {
	Result
	Post *models.Post `json:"post,omitempty"`
}

// CommentResult carries the created comment on success
type CommentResult struct {
	Result
	Comment *models.Comment `json:"comment,omitempty"`
}

// PostService covers posts, comments and likes
type PostService struct {
	store       *repositories.Store
	users       *UserService
	revalidator Revalidator
	logger      *zap.Logger
}

func NewPostService(store *repositories.Store, users *UserService, revalidator Revalidator, logger *zap.Logger) *PostService {
	return &PostService{store: store, users: users, revalidator: revalidator, logger: logger}
}

// CreatePost publishes a post for the caller. Either content or image must be present.
func (s *PostService) CreatePost(ctx context.Context, subject, content, image string) PostResult {
	post, err := s.createPost(ctx, subject, content, image)
	if err != nil {
		return PostResult{Result: failed(s.logger, "create post", "Failed to create post", err)}
	}
	s.revalidator.Revalidate(ctx, "/")
	return PostResult{Result: succeeded(), Post: post}
}

func (s *PostService) createPost(ctx context.Context, subject, content, image string) (*models.Post, error) {
	userID, err := s.users.ResolveUserID(ctx, subject)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	image = strings.TrimSpace(image)
	if content == "" && image == "" {
		return nil, ErrEmptyContent
	}

	post := &models.Post{AuthorID: userID, Content: content, Image: image}
	if err := s.store.Posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPosts returns the home feed, newest first. It is empty, never nil, on failure.
func (s *PostService) GetPosts(ctx context.Context) []models.Post {
	posts, err := s.store.Posts.GetPosts(ctx)
	if err != nil {
		s.logger.Error("get posts failed", zap.Error(err))
		return []models.Post{}
	}
	return posts
}

// GetPost returns one post shaped like a feed entry, or nil
func (s *PostService) GetPost(ctx context.Context, postID string) *models.Post {
	post, err := s.store.Posts.GetPostByID(ctx, postID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get post failed", zap.String("post_id", postID), zap.Error(err))
		}
		return nil
	}
	return post
}

// GetComments returns the comments of a post, oldest first
func (s *PostService) GetComments(ctx context.Context, postID string) []models.Comment {
	comments, err := s.store.Comments.GetCommentsByPostID(ctx, postID)
	if err != nil {
		s.logger.Error("get comments failed", zap.String("post_id", postID), zap.Error(err))
		return []models.Comment{}
	}
	return comments
}

// GetUserPosts returns the posts written by userID
func (s *PostService) GetUserPosts(ctx context.Context, userID string) []models.Post {
	posts, err := s.store.Posts.GetPostsByAuthorID(ctx, userID)
	if err != nil {
		s.logger.Error("get user posts failed", zap.String("user_id", userID), zap.Error(err))
		return []models.Post{}
	}
	return posts
}

// GetUserLikedPosts returns the posts userID has liked
func (s *PostService) GetUserLikedPosts(ctx context.Context, userID string) []models.Post {
	posts, err := s.store.Posts.GetPostsLikedBy(ctx, userID)
	if err != nil {
		s.logger.Error("get liked posts failed", zap.String("user_id", userID), zap.Error(err))
		return []models.Post{}
	}
	return posts
}

// DeletePost removes a post the caller wrote, along with its comments, likes and notifications
func (s *PostService) DeletePost(ctx context.Context, subject, postID string) Result {
	if err := s.deletePost(ctx, subject, postID); err != nil {
		return failed(s.logger, "delete post", "Failed to delete post", err)
	}
	s.revalidator.Revalidate(ctx, "/")
	return succeeded()
}

func (s *PostService) deletePost(ctx context.Context, subject, postID string) error {
	userID, err := s.users.ResolveUserID(ctx, subject)
	if err != nil {
		return err
	}
	authorID, err := s.postAuthor(ctx, postID)
	if err != nil {
		return err
	}
	if authorID != userID {
		return ErrNotPostOwner
	}
	if err := s.store.Posts.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

// ToggleLike removes the caller's like on postID if present. Otherwise it adds the like
// and, unless the caller wrote the post, a LIKE notification for the author in one transaction.
func (s *PostService) ToggleLike(ctx context.Context, subject, postID string) Result {
	if err := s.toggleLike(ctx, subject, postID); err != nil {
		return failed(s.logger, "toggle like", "Failed to toggle like", err)
	}
	s.revalidator.Revalidate(ctx, "/")
	return succeeded()
}

func (s *PostService) toggleLike(ctx context.Context, subject, postID string) error {
	userID, err := s.users.ResolveUserID(ctx, subject)
	if err != nil {
		return err
	}
	authorID, err := s.postAuthor(ctx, postID)
	if err != nil {
		return err
	}

	liked, err := s.store.Likes.HasUserLikedPost(ctx, postID, userID)
	if err != nil {
		return err
	}
	if liked {
		return s.store.Likes.DeleteLike(ctx, postID, userID)
	}

	return s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Likes.CreateLike(ctx, &models.Like{UserID: userID, PostID: postID}); err != nil {
			return err
		}
		if authorID == userID {
			return nil
		}
		return tx.Notifications.CreateNotification(ctx, &models.Notification{
			Type:      models.NotificationLike,
			UserID:    authorID,
			CreatorID: userID,
			PostID:    &postID,
		})
	})
}

// CreateComment adds a comment by the caller and, unless the caller wrote the post,
// a COMMENT notification for the author in one transaction.
func (s *PostService) CreateComment(ctx context.Context, subject, postID, content string) CommentResult {
	comment, err := s.createComment(ctx, subject, postID, content)
	if err != nil {
		return CommentResult{Result: failed(s.logger, "create comment", "Failed to create comment", err)}
	}
	s.revalidator.Revalidate(ctx, "/")
	return CommentResult{Result: succeeded(), Comment: comment}
}

func (s *PostService) createComment(ctx context.Context, subject, postID, content string) (*models.Comment, error) {
	userID, err := s.users.ResolveUserID(ctx, subject)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	authorID, err := s.postAuthor(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{AuthorID: userID, PostID: postID, Content: content}
	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Comments.CreateComment(ctx, comment); err != nil {
			return err
		}
		if authorID == userID {
			return nil
		}
		return tx.Notifications.CreateNotification(ctx, &models.Notification{
			Type:      models.NotificationComment,
			UserID:    authorID,
			CreatorID: userID,
			PostID:    &postID,
			CommentID: &comment.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *PostService) postAuthor(ctx context.Context, postID string) (string, error) {
	authorID, err := s.store.Posts.GetAuthorID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrPostNotFound
		}
		return "", err
	}
	return authorID, nil
}
