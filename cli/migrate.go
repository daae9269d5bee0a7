package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gm-socius/review-restaurants/store"
)

// NewMigrateCommand creates the migrate command. Opening the store already
// creates missing tables, so migrate only reports the result.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the restaurant and review tables if they are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			s, err := openStore(cmd.Context(), rootOpts, formatter)
			if err != nil {
				return err
			}
			defer s.Close()

			return formatter.Success(map[string]string{"schema": "up to date"}, func(w io.Writer) {
				fmt.Fprintln(w, "Schema is up to date.")
			})
		},
	}
}

// NewSeedCommand creates the seed command. Each run inserts another copy of
// the sample restaurants.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the sample restaurants and reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			s, err := openStore(cmd.Context(), rootOpts, formatter)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.SeedSampleData(cmd.Context()); err != nil {
				return formatter.Fail("add sample data", err)
			}

			restaurants, reviews, err := sampleCounts()
			if err != nil {
				return formatter.Fail("read sample data", err)
			}
			data := map[string]int{"restaurants": restaurants, "reviews": reviews}
			return formatter.Success(data, func(w io.Writer) {
				fmt.Fprintf(w, "Added %d restaurants and %d reviews.\n", restaurants, reviews)
			})
		},
	}
}

func sampleCounts() (restaurants, reviews int, err error) {
	samples, err := store.SampleRestaurants()
	if err != nil {
		return 0, 0, err
	}
	for _, r := range samples {
		reviews += len(r.Reviews)
	}
	return len(samples), reviews, nil
}
