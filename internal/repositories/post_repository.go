package repositories

import (
	"context"

	"github.com/anonto42/socially/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetPosts(ctx context.Context) ([]models.Post, error)
	GetPostsByAuthorID(ctx context.Context, authorID string) ([]models.Post, error)
	GetPostsLikedBy(ctx context.Context, userID string) ([]models.Post, error)
	GetAuthorID(ctx context.Context, postID string) (string, error)
	DeletePost(ctx context.Context, id string) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

const postColumns = `posts.*,
	(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count,
	(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count`

// feed builds the query shared by every post listing: newest first, with author,
// comments oldest first with their authors, liker ids and counts.
func (r *PostgresPostRepository) feed(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Post{}).
		Select(postColumns).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "post_id")
		}).
		Order("posts.created_at DESC")
}

// CreatePost inserts a post; associations are never written through it
func (r *PostgresPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// GetPostByID retrieves a single post with the same shape as the feed
func (r *PostgresPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.feed(ctx).Where("posts.id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPosts retrieves all posts for the home feed
func (r *PostgresPostRepository) GetPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.feed(ctx).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByAuthorID retrieves the posts written by authorID
func (r *PostgresPostRepository) GetPostsByAuthorID(ctx context.Context, authorID string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.feed(ctx).Where("posts.author_id = ?", authorID).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsLikedBy retrieves the posts userID has a like on
func (r *PostgresPostRepository) GetPostsLikedBy(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	liked := r.db.WithContext(ctx).Model(&models.Like{}).Select("post_id").Where("user_id = ?", userID)
	if err := r.feed(ctx).Where("posts.id IN (?)", liked).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetAuthorID returns the owner of a post
func (r *PostgresPostRepository) GetAuthorID(ctx context.Context, postID string) (string, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Select("id", "author_id").
		Where("id = ?", postID).
		Take(&post).Error
	if err != nil {
		return "", err
	}
	return post.AuthorID, nil
}

// DeletePost deletes a post; comments, likes and notifications go with it
func (r *PostgresPostRepository) DeletePost(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
