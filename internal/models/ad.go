package models

import (
	"time"
)

// AdPlacements is the fixed set of placement identifiers. One row per placement.
var AdPlacements = []string{
	"game_vertical",
	"game_horizontal",
	"blog_sidebar",
	"shop_banner",
	"home_popup",
}

type Ad struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Placement string    `gorm:"uniqueIndex;size:50;not null" json:"placement"`
	Code      string    `gorm:"type:text" json:"code"` // injectable script/markup
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidAdPlacement(placement string) bool {
	for _, p := range AdPlacements {
		if p == placement {
			return true
		}
	}
	return false
}
