package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gm-socius/review-restaurants/models"
)

// NewRestaurantsCommand creates the restaurants command group.
func NewRestaurantsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "List and add restaurants",
	}

	cmd.AddCommand(newRestaurantsListCommand(rootOpts))
	cmd.AddCommand(newRestaurantsAddCommand(rootOpts))

	return cmd
}

func newRestaurantsListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every restaurant with its reviews and average rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			s, err := openStore(cmd.Context(), rootOpts, formatter)
			if err != nil {
				return err
			}
			defer s.Close()

			restaurants, err := s.ListRestaurants(cmd.Context())
			if err != nil {
				return formatter.Fail("list restaurants", err)
			}

			summaries := models.SummarizeAll(restaurants)
			return formatter.Success(summaries, func(w io.Writer) {
				writeListing(w, summaries)
			})
		},
	}
}

func newRestaurantsAddCommand(rootOpts *RootOptions) *cobra.Command {
	var name, imageURL string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a restaurant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			s, err := openStore(cmd.Context(), rootOpts, formatter)
			if err != nil {
				return err
			}
			defer s.Close()

			var image *string
			if cmd.Flags().Changed("image-url") {
				image = &imageURL
			}

			restaurant, err := s.AddRestaurant(cmd.Context(), name, image)
			if err != nil {
				return formatter.Fail("add restaurant", err)
			}

			summary := models.Summarize(*restaurant)
			return formatter.Success(summary, func(w io.Writer) {
				fmt.Fprintf(w, "Added restaurant %s (#%d).\n", summary.Name, summary.ID)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "restaurant name (required)")
	cmd.Flags().StringVar(&imageURL, "image-url", "", "picture of the restaurant")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// writeListing renders restaurants the way the web page does, one block per
// restaurant.
func writeListing(w io.Writer, summaries []models.RestaurantSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No restaurants yet.")
		return
	}

	for i, r := range summaries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (#%d)\n", r.Name, r.ID)
		if r.ImageURL != nil {
			fmt.Fprintf(w, "  Image: %s\n", *r.ImageURL)
		}
		if r.AverageRating == nil {
			fmt.Fprintln(w, "  Be the first to leave a review!")
			continue
		}
		fmt.Fprintf(w, "  Average rating: %.1f\n", *r.AverageRating)
		for _, review := range r.Reviews {
			fmt.Fprintf(w, "  %s: %d/%d '%s'\n", review.Reviewer(), review.Stars, models.MaxStars, review.Body)
		}
	}
}
