package models

import "time"

// Follow is a directed edge: FollowerID follows FollowingID
type Follow struct {
	FollowerID  string    `json:"followerId" gorm:"primaryKey;size:36"`
	FollowingID string    `json:"followingId" gorm:"primaryKey;size:36;index"`
	CreatedAt   time.Time `json:"createdAt"`

	Follower  *User `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following *User `json:"-" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}
