package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/devfolio/internal/auth"
	"github.com/jonathan/devfolio/internal/server"
	"github.com/jonathan/devfolio/internal/server/ratelimit"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio HTTP server",
		Long:  `Start an HTTP server for the public portfolio pages, the login flow and the admin area.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides config)")
	return cmd
}

func runServe(ctx context.Context, opts *rootOptions, port int) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	if port == 0 {
		port = a.cfg.Port
	}

	asst, err := a.newAssistant(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = asst.Close() }()

	st := a.loadStore(ctx)
	srv := server.New(
		server.Config{
			Port:      port,
			RateLimit: ratelimit.LoadConfig(os.LookupEnv),
		},
		server.Deps{
			Store:     st,
			Auth:      auth.NewService(st, a.logger.Named("auth")),
			Assistant: asst,
			Logger:    a.logger,
		},
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		if ctx.Err() != nil {
			a.logger.Info("shutdown signal received")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	a.logger.Info("devfolio stopped", zap.Int("port", port))
	return nil
}
