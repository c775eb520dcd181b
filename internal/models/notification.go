package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationFollow  NotificationType = "FOLLOW"
	NotificationLike    NotificationType = "LIKE"
	NotificationComment NotificationType = "COMMENT"
)

// Notification is an event addressed to UserID, caused by CreatorID
type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;size:36"`
	UserID    string           `json:"userId" gorm:"size:36;index;not null"`
	CreatorID string           `json:"creatorId" gorm:"size:36;not null"`
	Type      NotificationType `json:"type" gorm:"size:16;not null"`
	Read      bool             `json:"read" gorm:"default:false"`
	PostID    *string          `json:"postId,omitempty" gorm:"size:36"`
	CommentID *string          `json:"commentId,omitempty" gorm:"size:36"`
	CreatedAt time.Time        `json:"createdAt" gorm:"index"`

	Recipient *User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Creator   *User    `json:"creator,omitempty" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	Post      *Post    `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comment   *Comment `json:"comment,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// MarkReadRequest defines the request body for marking notifications as read
type MarkReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// NotificationView is a notification joined with summaries of its creator, post and comment
type NotificationView struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
	Creator   UserCompact      `json:"creator"`
	Post      *PostSummary     `json:"post,omitempty"`
	Comment   *CommentSummary  `json:"comment,omitempty"`
}

type PostSummary struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

type CommentSummary struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToView flattens the preloaded associations of n
func (n *Notification) ToView() NotificationView {
	v := NotificationView{
		ID:        n.ID,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
	if n.Creator != nil {
		v.Creator = n.Creator.ToCompact()
	}
	if n.Post != nil {
		v.Post = &PostSummary{ID: n.Post.ID, Content: n.Post.Content, Image: n.Post.Image}
	}
	if n.Comment != nil {
		v.Comment = &CommentSummary{ID: n.Comment.ID, Content: n.Comment.Content, CreatedAt: n.Comment.CreatedAt}
	}
	return v
}
