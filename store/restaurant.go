package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gm-socius/review-restaurants/models"
)

// AddRestaurant inserts a restaurant. A nil or blank imageURL is stored as
// NULL. Names are not unique.
func (s *Store) AddRestaurant(ctx context.Context, name string, imageURL *string) (*models.Restaurant, error) {
	restaurant := models.Restaurant{
		Name:     models.NormalizeName(name),
		ImageURL: models.NormalizeImageURL(imageURL),
	}

	if err := validateInput(restaurantInput{Name: restaurant.Name, ImageURL: restaurant.ImageURL}); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	return &restaurant, nil
}

// ListRestaurants returns every restaurant in insertion order, each with its
// reviews in insertion order.
func (s *Store) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).
		Preload("Reviews", orderByID).
		Order("id").
		Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	return restaurants, nil
}

// FindRestaurantByName returns the restaurant with the lowest id carrying
// the given name.
func (s *Store) FindRestaurantByName(ctx context.Context, name string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("Reviews", orderByID).
		Where("name = ?", models.NormalizeName(name)).
		First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrRestaurantNotFound, name)
		}
		return nil, fmt.Errorf("failed to find restaurant %q: %w", name, err)
	}

	return &restaurant, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
