package repository

import (
	"gamescove/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Ads struct {
	DB *gorm.DB
}

func (r Ads) All() ([]models.Ad, error) {
	var ads []models.Ad
	err := r.DB.Order("id asc").Find(&ads).Error
	return ads, err
}

// ByPlacement maps placement name -> code for public injection.
func (r Ads) ByPlacement() (map[string]string, error) {
	ads, err := r.All()
	if err != nil {
		return nil, err
	}
	codes := make(map[string]string, len(ads))
	for _, ad := range ads {
		codes[ad.Placement] = ad.Code
	}
	return codes, nil
}

// SaveAll upserts one code per placement inside a single transaction, so a
// failure mid-loop leaves no half-updated set behind.
func (r Ads) SaveAll(codes map[string]string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for placement, code := range codes {
			ad := models.Ad{Placement: placement, Code: code}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "placement"}},
				DoUpdates: clause.AssignmentColumns([]string{"code", "updated_at"}),
			}).Create(&ad).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r Ads) DeleteByPlacement(placement string) error {
	res := r.DB.Where("placement = ?", placement).Delete(&models.Ad{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
