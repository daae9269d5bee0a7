package models

import "fmt"

const (
	MinStars = 1
	MaxStars = 5
)

type Review struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Stars        int    `json:"stars" gorm:"not null"`
	Body         string `json:"body" gorm:"type:text;not null"`
	RestaurantID uint   `json:"restaurant_id" gorm:"not null;index"`
}

func (Review) TableName() string {
	return "review"
}

// Reviewer returns the pseudonymous label shown next to a review, in the
// range user100..user999. It only depends on the review id, so the label is
// stable across renders.
func (r Review) Reviewer() string {
	return fmt.Sprintf("user%d", 100+r.ID%900)
}
