package models

import "strconv"

// AverageRating returns the mean star rating rounded to one decimal place,
// with ties going to the even digit of the exact binary value (2.25 → 2.2,
// 4.75 → 4.8). ok is false when the restaurant has no reviews; callers must render an
// empty state instead of a number.
func (r Restaurant) AverageRating() (avg float64, ok bool) {
	if len(r.Reviews) == 0 {
		return 0, false
	}

	total := 0
	for _, review := range r.Reviews {
		total += review.Stars
	}
	mean := float64(total) / float64(len(r.Reviews))

	avg, _ = strconv.ParseFloat(strconv.FormatFloat(mean, 'f', 1, 64), 64)
	return avg, true
}

// RestaurantSummary is the listing view of a restaurant. AverageRating is
// nil when there are no reviews yet.
type RestaurantSummary struct {
	Restaurant
	ReviewCount   int      `json:"review_count"`
	AverageRating *float64 `json:"average_rating"`
}

func Summarize(r Restaurant) RestaurantSummary {
	summary := RestaurantSummary{
		Restaurant:  r,
		ReviewCount: len(r.Reviews),
	}
	if avg, ok := r.AverageRating(); ok {
		summary.AverageRating = &avg
	}
	if summary.Reviews == nil {
		summary.Reviews = []Review{}
	}
	return summary
}

func SummarizeAll(restaurants []Restaurant) []RestaurantSummary {
	summaries := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		summaries = append(summaries, Summarize(r))
	}
	return summaries
}
