package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the local mirror of an identity provider account
type User struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	ProviderID string    `json:"-" gorm:"uniqueIndex;not null"` // Firebase UID, immutable
	Name       string    `json:"name"`
	Username   string    `json:"username" gorm:"uniqueIndex;not null"`
	Email      string    `json:"email" gorm:"not null"`
	Image      string    `json:"image,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Aggregates filled in by profile queries, never stored
	FollowersCount int64 `json:"followersCount" gorm:"->;-:migration"`
	FollowingCount int64 `json:"followingCount" gorm:"->;-:migration"`
	PostsCount     int64 `json:"postsCount" gorm:"->;-:migration"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserCompact is the public profile shown next to posts, comments and notifications
type UserCompact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Image:    u.Image,
	}
}

// SuggestedUser is a "who to follow" entry
type SuggestedUser struct {
	UserCompact
	FollowersCount int64 `json:"followersCount"`
}

// Identity is what the identity provider tells us about the authenticated principal
type Identity struct {
	Subject  string
	Name     string
	Username string
	Email    string
	Image    string
}

// JwtCustomClaims carry the provider subject of the session owner
type JwtCustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
