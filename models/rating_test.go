package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurantWithStars(stars ...int) Restaurant {
	r := Restaurant{ID: 1, Name: "Test"}
	for i, s := range stars {
		r.Reviews = append(r.Reviews, Review{ID: uint(i + 1), Stars: s, RestaurantID: 1})
	}
	return r
}

func repeatStars(stars, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = stars
	}
	return out
}

func TestAverageRating_NoReviews(t *testing.T) {
	avg, ok := Restaurant{Name: "X"}.AverageRating()
	assert.False(t, ok)
	assert.Zero(t, avg)
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name  string
		stars []int
		want  float64
	}{
		{"single review", []int{4}, 4.0},
		{"wong kei", []int{2, 5}, 3.5},
		{"rounds down", []int{5, 5, 4}, 4.7},
		{"rounds up", []int{1, 2, 2}, 1.7},
		{"repeating third", []int{1, 1, 2}, 1.3},
		{"all fives", []int{5, 5, 5, 5}, 5.0},
		{"tie to even down", []int{2, 2, 2, 3}, 2.2},
		{"tie to even down again", []int{3, 3, 3, 4}, 3.2},
		{"tie to even low", []int{1, 1, 1, 2}, 1.2},
		{"tie to even up", []int{4, 5, 5, 5}, 4.8},
		{"just below half", append(repeatStars(2, 17), 3, 3, 3), 2.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, ok := restaurantWithStars(tt.stars...).AverageRating()
			require.True(t, ok)
			assert.InDelta(t, tt.want, avg, 1e-9)
		})
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(restaurantWithStars(2, 5))
	assert.Equal(t, 2, summary.ReviewCount)
	require.NotNil(t, summary.AverageRating)
	assert.InDelta(t, 3.5, *summary.AverageRating, 1e-9)

	empty := Summarize(Restaurant{ID: 7, Name: "Y"})
	assert.Nil(t, empty.AverageRating)
	assert.Equal(t, 0, empty.ReviewCount)

	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Y","image_url":null,"reviews":[],"review_count":0,"average_rating":null}`, string(data))
}

func TestReviewer(t *testing.T) {
	assert.Equal(t, "user101", Review{ID: 1}.Reviewer())
	assert.Equal(t, "user999", Review{ID: 899}.Reviewer())
	assert.Equal(t, "user100", Review{ID: 900}.Reviewer())
}

func TestNormalizeName(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single rune.
	assert.Equal(t, "Caf\u00e9", NormalizeName("  Cafe\u0301 "))
	assert.Equal(t, "Wong Kei", NormalizeName("Wong Kei"))
}

func TestNormalizeImageURL(t *testing.T) {
	blank := "   "
	url := " https://example.com/a.jpg "

	assert.Nil(t, NormalizeImageURL(nil))
	assert.Nil(t, NormalizeImageURL(&blank))
	require.NotNil(t, NormalizeImageURL(&url))
	assert.Equal(t, "https://example.com/a.jpg", *NormalizeImageURL(&url))
}
