package store

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gm-socius/review-restaurants/models"
)

var (
	// ErrInvalidInput is wrapped by every *ValidationError.
	ErrInvalidInput = errors.New("invalid input")

	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// ValidationError reports the first field that failed validation, named
// after its JSON key.
type ValidationError struct {
	Field string
	Rule  string
	Param string
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field, e.Param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", e.Field)
	case "gte", "lte":
		return fmt.Sprintf("%s must be between %d and %d", e.Field, models.MinStars, models.MaxStars)
	}
	return fmt.Sprintf("%s failed %q validation", e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type restaurantInput struct {
	Name     string  `json:"name" validate:"required,max=30"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

type reviewInput struct {
	Stars int    `json:"stars" validate:"gte=1,lte=5"`
	Body  string `json:"body"`
}

func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return &ValidationError{Field: first.Field(), Rule: first.Tag(), Param: first.Param()}
	}
	return fmt.Errorf("failed to validate input: %w", err)
}
