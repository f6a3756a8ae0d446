package jina

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/PsychArch/jina-mcp-tools/internal/prompts"
	"github.com/PsychArch/jina-mcp-tools/internal/tools"
)

// SearchArgs represents the arguments for the jina_search tool.
type SearchArgs struct {
	Query        string `json:"query"`
	Count        int    `json:"count,omitempty"`
	ReturnFormat string `json:"returnFormat,omitempty"`
	SiteFilter   string `json:"siteFilter,omitempty"`
}

// defaultSearchCount is the number of results returned when the caller
// does not ask for a specific count.
const defaultSearchCount = 5

// CreateSearchTool creates the jina_search tool backed by the given client.
func CreateSearchTool(ctx *tools.Context, client *Client) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[SearchArgs]) (*mcp.CallToolResultFor[any], error) {
		return searchWeb(ctxReq, ctx, client, params.Arguments), nil
	}

	tool := &mcp.Tool{
		Name:        "jina_search",
		Description: prompts.JinaSearchToolDescription,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// searchWeb runs one search invocation: validate, call the upstream
// once, render the result list in the requested format.
func searchWeb(ctxReq context.Context, ctx *tools.Context, client *Client, args SearchArgs) *mcp.CallToolResultFor[any] {
	if strings.TrimSpace(args.Query) == "" {
		return tools.ErrorResponse("Query cannot be empty")
	}

	count := args.Count
	if count <= 0 {
		count = defaultSearchCount
	}

	returnFormat := args.ReturnFormat
	if returnFormat == "" {
		returnFormat = ReturnFormatMarkdown
	}

	results, err := client.Search(ctxReq, args.Query, SearchOptions{
		Count:      count,
		SiteFilter: args.SiteFilter,
	})
	if err != nil {
		ctx.Logger.WithTool("jina_search").Error("Search failed", "error", err, "query", args.Query)
		return tools.ErrorResponse(err.Error())
	}

	meta := map[string]any{
		"query":        args.Query,
		"count":        count,
		"returnFormat": returnFormat,
		"resultCount":  len(results),
	}
	if args.SiteFilter != "" {
		meta["siteFilter"] = args.SiteFilter
	}

	return tools.ResponseWithMeta(FormatResults(results, returnFormat), meta)
}
