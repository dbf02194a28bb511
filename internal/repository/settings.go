package repository

import (
	"gamescove/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Settings struct {
	DB *gorm.DB
}

// Merged returns the full settings object: stored values over the documented
// defaults for absent keys.
func (r Settings) Merged() (map[string]string, error) {
	var rows []models.Setting
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}

	merged := make(map[string]string, len(models.SettingDefaults))
	for key, value := range models.SettingDefaults {
		merged[key] = value
	}
	for _, row := range rows {
		if models.ValidSettingKey(row.Key) {
			merged[row.Key] = row.Value
		}
	}
	return merged, nil
}

// SaveAll upserts every submitted key in one transaction. A failure rolls the
// whole batch back so the settings object never ends up half-updated.
func (r Settings) SaveAll(values map[string]string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			setting := models.Setting{Key: key, Value: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&setting).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
