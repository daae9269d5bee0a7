package models

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxRestaurantNameLength matches the width of the restaurant.name column.
const MaxRestaurantNameLength = 30

type Restaurant struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Name     string   `json:"name" gorm:"size:30;not null"`
	ImageURL *string  `json:"image_url"` // nil means no image
	Reviews  []Review `json:"reviews" gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Restaurant) TableName() string {
	return "restaurant"
}

// NormalizeName trims surrounding whitespace and converts the name to NFC so
// that visually identical names are stored identically.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// NormalizeImageURL maps a blank URL to nil. Form fields always submit a
// value, and an empty one means "no image".
func NormalizeImageURL(imageURL *string) *string {
	if imageURL == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*imageURL)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
