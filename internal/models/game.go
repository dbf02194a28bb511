package models

import (
	"time"

	"gorm.io/datatypes"
)

// FeaturedTag marks a game for the homepage carousel.
const FeaturedTag = "Featured"

// GameThemes is the set of accepted seasonal themes. Empty means no theme.
var GameThemes = []string{"retro", "neon", "halloween", "christmas", "summer"}

type Game struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"not null" json:"title"`
	Slug        string                      `gorm:"uniqueIndex;size:160;not null" json:"slug"`
	Image       string                      `json:"image"`
	Category    string                      `gorm:"index" json:"category"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Theme       string                      `gorm:"size:30" json:"theme,omitempty"`
	Description string                      `gorm:"type:text" json:"description"`
	VideoURL    *string                     `json:"video_url,omitempty"`
	DownloadURL string                      `gorm:"default:'#'" json:"download_url"`
	Gallery     datatypes.JSONSlice[string] `json:"gallery"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (g *Game) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func ValidGameTheme(theme string) bool {
	if theme == "" {
		return true
	}
	for _, t := range GameThemes {
		if t == theme {
			return true
		}
	}
	return false
}
