package store

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/gm-socius/review-restaurants/models"
)

//go:embed seed.yaml
var sampleDataYAML []byte

type sampleData struct {
	Restaurants []sampleRestaurant `yaml:"restaurants"`
}

type sampleRestaurant struct {
	Name     string         `yaml:"name"`
	ImageURL string         `yaml:"image_url"`
	Reviews  []sampleReview `yaml:"reviews"`
}

type sampleReview struct {
	Stars int    `yaml:"stars"`
	Body  string `yaml:"body"`
}

// SampleRestaurants returns the demo data set with reviews attached but
// without ids.
func SampleRestaurants() ([]models.Restaurant, error) {
	var data sampleData
	if err := yaml.Unmarshal(sampleDataYAML, &data); err != nil {
		return nil, fmt.Errorf("failed to parse sample data: %w", err)
	}

	restaurants := make([]models.Restaurant, 0, len(data.Restaurants))
	for _, r := range data.Restaurants {
		imageURL := r.ImageURL
		restaurant := models.Restaurant{
			Name:     models.NormalizeName(r.Name),
			ImageURL: models.NormalizeImageURL(&imageURL),
		}
		for _, review := range r.Reviews {
			restaurant.Reviews = append(restaurant.Reviews, models.Review{
				Stars: review.Stars,
				Body:  review.Body,
			})
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, nil
}

// SeedSampleData inserts the demo restaurants and their reviews in one
// transaction. Calling it again inserts the same set again.
func (s *Store) SeedSampleData(ctx context.Context) error {
	restaurants, err := SampleRestaurants()
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range restaurants {
			if err := tx.Create(&restaurants[i]).Error; err != nil {
				return fmt.Errorf("failed to seed restaurant %q: %w", restaurants[i].Name, err)
			}
		}
		return nil
	})
}
