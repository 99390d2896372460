package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	bcserver "github.com/HendryAvila/bulletcheck/internal/server"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			logger, err := opts.newLogger()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			s := bcserver.New(cfg, logger)
			// ServeStdio handles SIGINT/SIGTERM itself.
			if err := server.ServeStdio(s); err != nil {
				logger.Error("server stopped", zap.Error(err))
				return fmt.Errorf("serving stdio: %w", err)
			}
			return nil
		},
	}
}
