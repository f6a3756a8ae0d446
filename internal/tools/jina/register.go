// Package jina provides registration for the Jina API tools.
package jina

import (
	"github.com/PsychArch/jina-mcp-tools/internal/tools"
)

// CreateJinaTools creates the reader and search tools. Both share one
// HTTP client; credentials are resolved per request, not here.
func CreateJinaTools(ctx *tools.Context) []*tools.ServerTool {
	client := NewClient()
	return []*tools.ServerTool{
		CreateReaderTool(ctx, client),
		CreateSearchTool(ctx, client),
	}
}
