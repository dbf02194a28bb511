package models

import (
	"time"
)

type BlogPost struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Slug         string    `gorm:"uniqueIndex;size:160;not null" json:"slug"`
	Summary      string    `gorm:"type:text" json:"summary"`
	Image        string    `json:"image"`
	VideoURL     *string   `json:"video_url,omitempty"`
	Author       string    `json:"author"`
	PublishDate  string    `gorm:"size:10" json:"publish_date"` // YYYY-MM-DD
	Rating       float64   `gorm:"default:0" json:"rating"`     // 0.0 - 5.0
	AffiliateURL *string   `json:"affiliate_url,omitempty"`
	Content      string    `gorm:"type:text" json:"content"` // trusted HTML/markdown
	Category     string    `gorm:"index" json:"category"`
	ViewCount    int       `gorm:"default:0" json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
