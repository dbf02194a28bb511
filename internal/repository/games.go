package repository

import (
	"gamescove/internal/models"

	"gorm.io/gorm"
)

type Games struct {
	DB *gorm.DB
}

func (r Games) All() ([]models.Game, error) {
	var games []models.Game
	err := r.DB.Order("id asc").Find(&games).Error
	return games, err
}

// Featured returns games carrying the Featured sentinel tag, in id order.
func (r Games) Featured() ([]models.Game, error) {
	games, err := r.All()
	if err != nil {
		return nil, err
	}
	featured := make([]models.Game, 0)
	for _, g := range games {
		if g.HasTag(models.FeaturedTag) {
			featured = append(featured, g)
		}
	}
	return featured, nil
}

func (r Games) ByID(id uint) (*models.Game, error) {
	var game models.Game
	if err := r.DB.First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r Games) BySlug(slug string) (*models.Game, error) {
	var game models.Game
	if err := r.DB.Where("slug = ?", slug).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// UniqueSlug derives a collision-free slug for title, ignoring excludeID when
// updating an existing row.
func (r Games) UniqueSlug(title string, excludeID uint) (string, error) {
	return uniqueSlug(r.DB, &models.Game{}, title, excludeID)
}

func (r Games) Create(game *models.Game) error {
	return r.DB.Create(game).Error
}

func (r Games) Update(game *models.Game) error {
	return r.DB.Save(game).Error
}

// Delete removes one game; gorm.ErrRecordNotFound when no row matched.
func (r Games) Delete(id uint) error {
	res := r.DB.Delete(&models.Game{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
