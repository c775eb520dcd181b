package models

import "time"

// Like marks that UserID liked PostID. No row means no like.
type Like struct {
	UserID    string    `json:"userId" gorm:"primaryKey;size:36"`
	PostID    string    `json:"postId" gorm:"primaryKey;size:36;index"`
	CreatedAt time.Time `json:"createdAt,omitempty"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
