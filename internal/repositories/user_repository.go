package repositories

import (
	"context"

	"github.com/anonto42/socially/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user directory operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByProviderID(ctx context.Context, providerID string) (*models.User, error)
	GetProfileByProviderID(ctx context.Context, providerID string) (*models.User, error)
	GetProfileByUsername(ctx context.Context, username string) (*models.User, error)
	GetSuggestedUsers(ctx context.Context, userID string, limit int) ([]models.SuggestedUser, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const profileColumns = `users.*,
	(SELECT COUNT(*) FROM follows WHERE follows.following_id = users.id) AS followers_count,
	(SELECT COUNT(*) FROM follows WHERE follows.follower_id = users.id) AS following_count,
	(SELECT COUNT(*) FROM posts WHERE posts.author_id = users.id) AS posts_count`

// CreateUser inserts a new user
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetUserByProviderID retrieves a user by identity provider subject
func (r *PostgresUserRepository) GetUserByProviderID(ctx context.Context, providerID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("provider_id = ?", providerID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfileByProviderID is GetUserByProviderID with follower, following and post counts
func (r *PostgresUserRepository) GetProfileByProviderID(ctx context.Context, providerID string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select(profileColumns).
		Where("users.provider_id = ?", providerID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfileByUsername retrieves a user with counts by username
func (r *PostgresUserRepository) GetProfileByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select(profileColumns).
		Where("users.username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetSuggestedUsers returns up to limit users that are neither userID nor already followed by it
func (r *PostgresUserRepository) GetSuggestedUsers(ctx context.Context, userID string, limit int) ([]models.SuggestedUser, error) {
	db := r.db.WithContext(ctx)
	var users []models.User
	err := db.Model(&models.User{}).
		Select(profileColumns).
		Where("users.id <> ?", userID).
		Where("users.id NOT IN (?)",
			db.Model(&models.Follow{}).Select("following_id").Where("follower_id = ?", userID),
		).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	suggested := make([]models.SuggestedUser, len(users))
	for i := range users {
		suggested[i] = models.SuggestedUser{
			UserCompact:    users[i].ToCompact(),
			FollowersCount: users[i].FollowersCount,
		}
	}
	return suggested, nil
}
