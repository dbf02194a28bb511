package repository

import (
	"sort"

	"gamescove/internal/models"

	"gorm.io/gorm"
)

// Meta serves distinct-value lookups for admin form auto-complete.
type Meta struct {
	DB *gorm.DB
}

// Categories returns the distinct categories used across games, blog posts
// and products, sorted.
func (r Meta) Categories() ([]string, error) {
	seen := make(map[string]bool)

	for _, model := range []interface{}{&models.Game{}, &models.BlogPost{}, &models.Product{}} {
		var values []string
		err := r.DB.Model(model).Distinct("category").
			Where("category <> ''").Pluck("category", &values).Error
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			seen[v] = true
		}
	}

	return sortedKeys(seen), nil
}

// Tags returns every distinct tag used by games. Tags live in a JSON column,
// so deduplication happens here rather than in SQL.
func (r Meta) Tags() ([]string, error) {
	var games []models.Game
	if err := r.DB.Select("tags").Find(&games).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, g := range games {
		for _, t := range g.Tags {
			if t != "" {
				seen[t] = true
			}
		}
	}
	return sortedKeys(seen), nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
