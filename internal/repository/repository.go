// Package repository holds the typed data access layer. Each entity gets a
// small repo struct over a shared *gorm.DB; absence is signalled with
// gorm.ErrRecordNotFound, never an error-free zero value.
package repository

import (
	"fmt"

	"gamescove/internal/utils"

	"gorm.io/gorm"
)

// Repos bundles every entity repository over one connection.
type Repos struct {
	Games       Games
	Products    Products
	Blogs       Blogs
	Comments    Comments
	SocialLinks SocialLinks
	Ads         Ads
	Settings    Settings
	Meta        Meta
}

func New(g *gorm.DB) *Repos {
	return &Repos{
		Games:       Games{DB: g},
		Products:    Products{DB: g},
		Blogs:       Blogs{DB: g},
		Comments:    Comments{DB: g},
		SocialLinks: SocialLinks{DB: g},
		Ads:         Ads{DB: g},
		Settings:    Settings{DB: g},
		Meta:        Meta{DB: g},
	}
}

// uniqueSlug derives a slug from name and probes model's table for
// collisions, appending -1, -2, ... until free. excludeID skips the row being
// updated. Concurrent creators can still race; the unique index on the slug
// column is the real safety net.
func uniqueSlug(g *gorm.DB, model interface{}, name string, excludeID uint) (string, error) {
	base := utils.Slugify(name)
	slug := base
	for n := 1; ; n++ {
		q := g.Model(model).Where("slug = ?", slug)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}
