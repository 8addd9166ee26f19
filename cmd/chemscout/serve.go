// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moleculab/chemscout/internal/history"
	"github.com/moleculab/chemscout/internal/httputil"
	"github.com/moleculab/chemscout/internal/pipeline"
	"github.com/moleculab/chemscout/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chemscout HTTP API",
	Long: `Serve exposes the lookup pipeline over HTTP: /api/v1/search runs a full
lookup, /api/v1/search/export streams papers as CSV, and /api/v1/history
reads or clears the local history. The server drains connections on
SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	// One store serves both the pipeline writes and the history
	// endpoints.
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	client := httputil.NewClient(cfg.HTTP)
	p := pipeline.New(buildResolver(client), buildAggregator(client), store, cfg.Papers.CacheTTL, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, p, store, logger)
	return srv.Run(ctx)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")

	rootCmd.AddCommand(serveCmd)
}
