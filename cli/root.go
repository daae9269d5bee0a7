package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gm-socius/review-restaurants/config"
	"github.com/gm-socius/review-restaurants/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DatabaseURI string
	Format      string // "json" | "text"
	Verbose     bool

	Config config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. cfg supplies the defaults that
// flags can override.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:           "review-restaurants",
		Short:         "Add restaurants, review them and see their average rating",
		Long:          "A small restaurant-review app: a web UI and JSON API (serve) plus commands that call the same operations directly.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DatabaseURI, "db", cfg.DatabaseURI, "database connection string (overrides DATABASE_URI)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewRestaurantsCommand(opts))
	cmd.AddCommand(NewReviewsCommand(opts))

	return cmd
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// openStore opens the configured database and brings its schema up to date.
func openStore(ctx context.Context, opts *RootOptions, formatter *OutputFormatter) (*store.Store, error) {
	formatter.VerboseLog("Opening database %s", opts.DatabaseURI)

	s, err := store.Open(opts.DatabaseURI, store.Options{EchoSQL: opts.Config.EchoSQL})
	if err != nil {
		return nil, formatter.Fail("open database", err)
	}

	if err := s.CreateSchema(ctx); err != nil {
		s.Close()
		return nil, formatter.Fail("create schema", err)
	}

	return s, nil
}
