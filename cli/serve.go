package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gm-socius/review-restaurants/handlers"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand creates the serve command, which runs the web app.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootOpts, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", rootOpts.Config.Addr(), "listen address")

	return cmd
}

func runServe(cmd *cobra.Command, rootOpts *RootOptions, addr string) error {
	if !rootOpts.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := cmd.Context()
	formatter := newFormatter(rootOpts, cmd)

	s, err := openStore(ctx, rootOpts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	server := &http.Server{
		Addr:              addr,
		Handler:           handlers.NewRouter(handlers.New(s), rootOpts.Config),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return formatter.Fail("run server", err)
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return formatter.Fail("shut down server", err)
		}
		return nil
	}
}
