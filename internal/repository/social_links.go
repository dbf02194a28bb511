package repository

import (
	"gamescove/internal/models"

	"gorm.io/gorm"
)

type SocialLinks struct {
	DB *gorm.DB
}

func (r SocialLinks) All() ([]models.SocialLink, error) {
	var links []models.SocialLink
	err := r.DB.Order("id asc").Find(&links).Error
	return links, err
}

func (r SocialLinks) ByID(id uint) (*models.SocialLink, error) {
	var link models.SocialLink
	if err := r.DB.First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r SocialLinks) Create(link *models.SocialLink) error {
	return r.DB.Create(link).Error
}

func (r SocialLinks) Update(link *models.SocialLink) error {
	return r.DB.Save(link).Error
}

func (r SocialLinks) Delete(id uint) error {
	res := r.DB.Delete(&models.SocialLink{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
