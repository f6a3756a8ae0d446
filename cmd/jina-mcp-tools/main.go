// Package main implements the Jina MCP server executable.
// It provides a Model Context Protocol server that exposes the Jina
// reader and search APIs as MCP tools over a stdio transport.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/PsychArch/jina-mcp-tools/internal/logging"
	"github.com/PsychArch/jina-mcp-tools/internal/server"
	"github.com/PsychArch/jina-mcp-tools/pkg/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jina-mcp-tools",
	Short: "Jina MCP server",
	Long: `Jina MCP server provides a Model Context Protocol server that exposes
the Jina Reader and Search APIs as MCP tools for external applications.`,
	RunE: runServer,
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")
}

// runServer starts the MCP server on a stdio transport.
func runServer(cmd *cobra.Command, args []string) error {
	if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
		fmt.Println(version.GetVersion().String())
		return nil
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger := logging.NewLogger(logLevel)

	srv, err := server.New(&server.Options{Logger: logger})
	if err != nil {
		logger.Error("Failed to create server", slog.Any("error", err))
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		logger.Error("Failed to start server", slog.Any("error", err))
		return fmt.Errorf("failed to start server: %w", err)
	}

	transport := mcp.NewStdioTransport()

	logger.Info("Jina MCP server starting",
		slog.String("version", version.GetVersion().Version),
		slog.Int("tools_available", srv.GetRegistry().Count()))

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Serve(ctx, transport)
	}()

	select {
	case err := <-serverDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Server error", slog.Any("error", err))
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	logger.Info("Jina MCP server stopped")
	return nil
}
