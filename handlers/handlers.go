package handlers

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/gm-socius/review-restaurants/models"
	"github.com/gm-socius/review-restaurants/store"
)

// ReviewStore is the operation contract the handlers drive.
type ReviewStore interface {
	AddRestaurant(ctx context.Context, name string, imageURL *string) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	AddReview(ctx context.Context, restaurantID uint, stars int, body string) (*models.Review, error)
	DeleteAllReviews(ctx context.Context) (int64, error)
	SeedSampleData(ctx context.Context) error
}

// Handler maps each user action to exactly one store operation.
type Handler struct {
	Store ReviewStore
}

func New(s ReviewStore) *Handler {
	return &Handler{Store: s}
}

const (
	errCodeInvalidInput       = "invalid_input"
	errCodeRestaurantNotFound = "restaurant_not_found"
	errCodeInternal           = "internal_error"
)

// classifyError maps a store error to an HTTP status, an API error code and
// a message that is safe to show to the user.
func classifyError(err error) (int, string, string) {
	var validationErr *store.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, errCodeInvalidInput, validationErr.Error()
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, store.ErrRestaurantNotFound):
		return http.StatusNotFound, errCodeRestaurantNotFound, "Restaurant not found"
	default:
		return http.StatusInternalServerError, errCodeInternal, "Something went wrong, please try again"
	}
}
