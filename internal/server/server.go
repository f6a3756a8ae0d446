// Package server implements the MCP server for the Jina API tools.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/PsychArch/jina-mcp-tools/internal/errors"
	"github.com/PsychArch/jina-mcp-tools/internal/logging"
	"github.com/PsychArch/jina-mcp-tools/internal/security"
	"github.com/PsychArch/jina-mcp-tools/internal/tools"
	"github.com/PsychArch/jina-mcp-tools/internal/tools/jina"
	"github.com/PsychArch/jina-mcp-tools/pkg/version"
)

// loggerAdapter wraps logging.Logger to implement the tools.Logger
// interface. This avoids a circular dependency between the logging and
// tools packages.
type loggerAdapter struct {
	*logging.Logger
}

// WithTool implements the tools.Logger interface.
func (a *loggerAdapter) WithTool(toolName string) tools.Logger {
	return &loggerAdapter{Logger: a.Logger.WithTool(toolName)}
}

// Server represents the Jina MCP server.
type Server struct {
	mcpServer *mcp.Server
	registry  *tools.Registry
	logger    *logging.Logger
	validator security.Validator
}

// Options configures the server instance.
type Options struct {
	Logger    *logging.Logger
	Validator security.Validator
}

// New creates a new Jina MCP server with the given options.
func New(opts *Options) (*Server, error) {
	if opts.Logger == nil {
		logLevel := os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			logLevel = "info"
		}
		opts.Logger = logging.NewLogger(logLevel)
	}

	if opts.Validator == nil {
		opts.Validator = security.NewDefaultValidator()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "jina-mcp-tools",
		Version: version.GetVersion().Version,
	}, nil)

	server := &Server{
		mcpServer: mcpServer,
		registry:  tools.NewRegistry(),
		logger:    opts.Logger,
		validator: opts.Validator,
	}

	if err := server.registerTools(); err != nil {
		return nil, errors.Wrap(err, "failed to register tools")
	}

	return server, nil
}

// Start validates the registry and logs startup diagnostics, most
// importantly whether a Jina API key is configured.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting Jina MCP server",
		slog.String("version", version.GetVersion().Version),
		slog.Int("tools", s.registry.Count()),
	)

	s.logKeyDiagnostics()

	if err := s.registry.Validate(); err != nil {
		return errors.Wrap(err, "tool registry validation failed")
	}

	return nil
}

// GetRegistry returns the tool registry.
func (s *Server) GetRegistry() *tools.Registry {
	return s.registry
}

// logKeyDiagnostics reports whether a Jina API key was found. This is
// informational only; an absent key just means unauthenticated requests.
func (s *Server) logKeyDiagnostics() {
	key := jina.ResolveAPIKey()
	switch {
	case key == "":
		s.logger.Info("No Jina API key configured; requests will be unauthenticated",
			slog.String("env", jina.APIKeyEnv))
	case len(key) < 10:
		s.logger.Warn("Jina API key looks implausibly short",
			slog.String("env", jina.APIKeyEnv),
			slog.Int("length", len(key)))
	default:
		s.logger.Info("Jina API key found",
			slog.String("env", jina.APIKeyEnv),
			slog.Int("length", len(key)))
	}
}

// registerTools registers the Jina tools with the server.
func (s *Server) registerTools() error {
	s.logger.Debug("Registering tools with MCP server")

	toolCtx := &tools.Context{
		Logger:    &loggerAdapter{Logger: s.logger},
		Validator: s.validator,
	}

	jinaTools := jina.CreateJinaTools(toolCtx)

	var toolNames []string
	for _, tool := range jinaTools {
		if err := s.registry.Register(tool); err != nil {
			return err
		}

		tool.RegisterFunc(s.mcpServer)
		toolNames = append(toolNames, tool.Tool.Name)

		s.logger.Debug("Registered tool", "name", tool.Tool.Name)
	}

	s.logger.Info("Successfully registered tools",
		slog.Int("count", len(jinaTools)),
		slog.Any("tools", toolNames),
	)

	return nil
}

// Serve runs the MCP server with the specified transport. It connects
// the MCP server to the transport and waits for either the session to
// complete or the context to be cancelled.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("Starting MCP server transport",
		slog.String("transport", fmt.Sprintf("%T", transport)),
	)

	session, err := s.mcpServer.Connect(ctx, transport)
	if err != nil {
		return errors.Wrap(err, "failed to connect MCP server")
	}

	sessionDone := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("MCP session goroutine panicked",
					slog.Any("panic", r))
				sessionDone <- fmt.Errorf("session panicked: %v", r)
			}
		}()
		sessionDone <- session.Wait()
	}()

	select {
	case err := <-sessionDone:
		s.logger.Info("MCP session finished")
		return err
	case <-ctx.Done():
		s.logger.Info("MCP server shutting down due to context cancellation")
		return ctx.Err()
	}
}
