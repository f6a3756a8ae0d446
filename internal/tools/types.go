// Package tools provides the tool registry and common types for MCP tools.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerTool pairs a tool schema with its registration function. The
// RegisterFunc closure carries the typed handler so mcp.AddTool can
// infer the tool's input schema from the argument struct.
type ServerTool struct {
	Tool         *mcp.Tool
	RegisterFunc func(server *mcp.Server)
}

// Context contains common dependencies needed by tools.
type Context struct {
	Logger    Logger
	Validator Validator
}

// Logger defines the logging interface for tools.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithTool(toolName string) Logger
}

// Validator defines the input validation interface.
type Validator interface {
	ValidateURL(urlStr string) error
}
