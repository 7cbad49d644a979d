package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryMusical = "musical"
	CategoryDance   = "dance"
	CategoryArt     = "art"
	CategoryShop    = "shop"
	CategoryService = "service"
)

// CategoryNames lists every category a host or listing may reference, in display order.
var CategoryNames = []string{
	CategoryMusical,
	CategoryDance,
	CategoryArt,
	CategoryShop,
	CategoryService,
}

type Category struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	IconURL string    `gorm:"not null;default:''" json:"icon_url"`
}

func (category *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	return
}

func IsCategoryName(name string) bool {
	for _, n := range CategoryNames {
		if n == name {
			return true
		}
	}
	return false
}
