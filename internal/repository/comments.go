package repository

import (
	"gamescove/internal/models"

	"gorm.io/gorm"
)

type Comments struct {
	DB *gorm.DB
}

// ForPost returns every comment on a post in id order, regardless of
// moderation status.
func (r Comments) ForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.DB.Where("blog_post_id = ?", postID).Order("id asc").Find(&comments).Error
	return comments, err
}

// All lists comments for the admin view, optionally filtered by status.
func (r Comments) All(status string) ([]models.Comment, error) {
	q := r.DB.Order("id asc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var comments []models.Comment
	err := q.Find(&comments).Error
	return comments, err
}

func (r Comments) ByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.DB.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r Comments) Create(comment *models.Comment) error {
	return r.DB.Create(comment).Error
}

// SetStatus moves a comment to approved/rejected; gorm.ErrRecordNotFound when
// the comment does not exist.
func (r Comments) SetStatus(id uint, status string) error {
	res := r.DB.Model(&models.Comment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r Comments) Delete(id uint) error {
	res := r.DB.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
