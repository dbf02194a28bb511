package repository

import (
	"gamescove/internal/models"

	"gorm.io/gorm"
)

type Blogs struct {
	DB *gorm.DB
}

func (r Blogs) All() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.DB.Order("id asc").Find(&posts).Error
	return posts, err
}

func (r Blogs) ByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.DB.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r Blogs) BySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.DB.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r Blogs) UniqueSlug(title string, excludeID uint) (string, error) {
	return uniqueSlug(r.DB, &models.BlogPost{}, title, excludeID)
}

// IncrementViews bumps the view counter without touching updated_at.
func (r Blogs) IncrementViews(id uint) error {
	return r.DB.Model(&models.BlogPost{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r Blogs) Create(post *models.BlogPost) error {
	return r.DB.Create(post).Error
}

func (r Blogs) Update(post *models.BlogPost) error {
	return r.DB.Save(post).Error
}

func (r Blogs) Delete(id uint) error {
	res := r.DB.Delete(&models.BlogPost{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
