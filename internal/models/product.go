package models

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"not null" json:"name"`
	Slug        string                      `gorm:"uniqueIndex;size:160;not null" json:"slug"`
	Image       string                      `json:"image"`
	Price       string                      `gorm:"size:20" json:"price"` // display string, e.g. "29.99"
	URL         string                      `gorm:"default:'#'" json:"url"`
	Description string                      `gorm:"type:text" json:"description"`
	Gallery     datatypes.JSONSlice[string] `json:"gallery"`
	Category    string                      `gorm:"index" json:"category"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
