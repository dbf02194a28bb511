package models

import (
	"time"
)

// SettingDefaults whitelists the setting keys and supplies the value served
// when a key has no stored row.
var SettingDefaults = map[string]string{
	"site_name":            "Gamescove",
	"hero_title":           "Play. Read. Shop.",
	"hero_subtitle":        "Hand-picked games, honest reviews and the gear to match.",
	"promo_banner_enabled": "false",
	"promo_banner_text":    "",
	"promo_banner_url":     "",
	"ad_script":            "",
}

type Setting struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "site_settings"
}

func ValidSettingKey(key string) bool {
	_, ok := SettingDefaults[key]
	return ok
}
