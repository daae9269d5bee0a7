package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/gm-socius/review-restaurants/models"
)

// AddReview inserts a review for restaurantID. If the restaurant does not
// exist the insert fails with gorm.ErrForeignKeyViolated and no row is
// written.
func (s *Store) AddReview(ctx context.Context, restaurantID uint, stars int, body string) (*models.Review, error) {
	if err := validateInput(reviewInput{Stars: stars, Body: body}); err != nil {
		return nil, err
	}

	review := models.Review{
		RestaurantID: restaurantID,
		Stars:        stars,
		Body:         body,
	}

	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review for restaurant %d: %w", restaurantID, err)
	}

	return &review, nil
}

// DeleteAllReviews removes every review and reports how many were deleted.
// Restaurants are left untouched.
func (s *Store) DeleteAllReviews(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Review{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete reviews: %w", result.Error)
	}

	return result.RowsAffected, nil
}
