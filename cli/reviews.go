package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewReviewsCommand creates the reviews command group.
func NewReviewsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Add and delete reviews",
	}

	cmd.AddCommand(newReviewsAddCommand(rootOpts))
	cmd.AddCommand(newReviewsPurgeCommand(rootOpts))

	return cmd
}

type reviewsAddOptions struct {
	RestaurantID   uint
	RestaurantName string
	Stars          int
	Body           string
}

func newReviewsAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &reviewsAddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Review a restaurant, chosen by id or by name",
		Long: `Review a restaurant, chosen by id or by name.

Names are not unique. When several restaurants share a name, --restaurant
picks the one added first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviewsAdd(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().UintVar(&opts.RestaurantID, "restaurant-id", 0, "id of the restaurant to review")
	cmd.Flags().StringVar(&opts.RestaurantName, "restaurant", "", "name of the restaurant to review")
	cmd.Flags().IntVar(&opts.Stars, "stars", 0, "rating from 1 to 5 (required)")
	cmd.Flags().StringVar(&opts.Body, "body", "", "review text")
	cmd.MarkFlagsOneRequired("restaurant-id", "restaurant")
	cmd.MarkFlagsMutuallyExclusive("restaurant-id", "restaurant")
	_ = cmd.MarkFlagRequired("stars")

	return cmd
}

func runReviewsAdd(cmd *cobra.Command, rootOpts *RootOptions, opts *reviewsAddOptions) error {
	ctx := cmd.Context()
	formatter := newFormatter(rootOpts, cmd)

	s, err := openStore(ctx, rootOpts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	restaurantID := opts.RestaurantID
	if cmd.Flags().Changed("restaurant") {
		restaurant, err := s.FindRestaurantByName(ctx, opts.RestaurantName)
		if err != nil {
			return formatter.Fail("find restaurant", err)
		}
		restaurantID = restaurant.ID
		formatter.VerboseLog("Resolved %q to restaurant #%d", opts.RestaurantName, restaurantID)
	}

	review, err := s.AddReview(ctx, restaurantID, opts.Stars, opts.Body)
	if err != nil {
		return formatter.Fail("add review", err)
	}

	return formatter.Success(review, func(w io.Writer) {
		fmt.Fprintf(w, "Added review #%d for restaurant #%d.\n", review.ID, review.RestaurantID)
	})
}

func newReviewsPurgeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete every review of every restaurant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			s, err := openStore(cmd.Context(), rootOpts, formatter)
			if err != nil {
				return err
			}
			defer s.Close()

			deleted, err := s.DeleteAllReviews(cmd.Context())
			if err != nil {
				return formatter.Fail("delete reviews", err)
			}

			return formatter.Success(map[string]int64{"deleted": deleted}, func(w io.Writer) {
				fmt.Fprintf(w, "Deleted %d reviews.\n", deleted)
			})
		},
	}
}
