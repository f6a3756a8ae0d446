package jina

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/PsychArch/jina-mcp-tools/internal/prompts"
	"github.com/PsychArch/jina-mcp-tools/internal/tools"
)

// ReaderArgs represents the arguments for the jina_reader tool.
type ReaderArgs struct {
	URL         string `json:"url"`
	Format      string `json:"format,omitempty"`
	WithLinks   bool   `json:"withLinks,omitempty"`
	WithImages  bool   `json:"withImages,omitempty"`
	UseReaderLM bool   `json:"useReaderLM,omitempty"`
}

// Return formats accepted by the reader tool. The format name is
// lower-cased into the X-Return-Format request header.
const (
	FormatDefault    = "Default"
	FormatMarkdown   = "Markdown"
	FormatHTML       = "HTML"
	FormatText       = "Text"
	FormatScreenshot = "Screenshot"
	FormatPageshot   = "Pageshot"
)

// CreateReaderTool creates the jina_reader tool backed by the given client.
func CreateReaderTool(ctx *tools.Context, client *Client) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ReaderArgs]) (*mcp.CallToolResultFor[any], error) {
		return readPage(ctxReq, ctx, client, params.Arguments), nil
	}

	tool := &mcp.Tool{
		Name:        "jina_reader",
		Description: prompts.JinaReaderToolDescription,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// readPage runs one reader invocation: validate, call the upstream once,
// wrap the outcome in a result envelope. Upstream and network failures
// become isError envelopes, never handler errors.
func readPage(ctxReq context.Context, ctx *tools.Context, client *Client, args ReaderArgs) *mcp.CallToolResultFor[any] {
	if err := ctx.Validator.ValidateURL(args.URL); err != nil {
		return tools.ErrorResponsef("Invalid URL: %v", err)
	}

	format := args.Format
	if format == "" {
		format = FormatDefault
	}
	if !validReaderFormat(format) {
		return tools.ErrorResponse("Invalid format: " + format)
	}

	content, err := client.Read(ctxReq, args.URL, ReadOptions{
		Format:      format,
		WithLinks:   args.WithLinks,
		WithImages:  args.WithImages,
		UseReaderLM: args.UseReaderLM,
	})
	if err != nil {
		ctx.Logger.WithTool("jina_reader").Error("Read failed", "error", err, "url", args.URL)
		return tools.ErrorResponse(err.Error())
	}

	return tools.ResponseWithMeta(content, map[string]any{
		"url":    args.URL,
		"format": format,
	})
}

func validReaderFormat(format string) bool {
	switch format {
	case FormatDefault, FormatMarkdown, FormatHTML, FormatText, FormatScreenshot, FormatPageshot:
		return true
	}
	return false
}
