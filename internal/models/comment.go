package models

import (
	"time"
)

// Comment moderation states. New submissions always start pending.
const (
	CommentPending  = "pending"
	CommentApproved = "approved"
	CommentRejected = "rejected"
)

type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BlogPostID uint      `gorm:"not null;index" json:"post_id"`
	BlogPost   BlogPost  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Author     string    `gorm:"size:50;not null" json:"author"`
	Avatar     string    `json:"avatar"`
	Date       string    `gorm:"size:30" json:"date"` // display date string
	Text       string    `gorm:"type:text;not null" json:"text"`
	Status     string    `gorm:"size:10;default:'pending';not null" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
