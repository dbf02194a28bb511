package repository

import (
	"gamescove/internal/models"

	"gorm.io/gorm"
)

type Products struct {
	DB *gorm.DB
}

func (r Products) All() ([]models.Product, error) {
	var products []models.Product
	err := r.DB.Order("id asc").Find(&products).Error
	return products, err
}

func (r Products) ByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r Products) BySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.Where("slug = ?", slug).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r Products) UniqueSlug(name string, excludeID uint) (string, error) {
	return uniqueSlug(r.DB, &models.Product{}, name, excludeID)
}

func (r Products) Create(product *models.Product) error {
	return r.DB.Create(product).Error
}

func (r Products) Update(product *models.Product) error {
	return r.DB.Save(product).Error
}

func (r Products) Delete(id uint) error {
	res := r.DB.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
