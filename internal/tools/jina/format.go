package jina

import (
	"fmt"
	"strings"
)

// Return formats accepted by the search tool. Anything else renders as
// plain text.
const (
	ReturnFormatMarkdown = "markdown"
	ReturnFormatText     = "text"
	ReturnFormatHTML     = "html"
)

// FormatResults renders a result list in the requested format. Unknown
// format values fall back to the plain text rendering.
func FormatResults(results []Result, format string) string {
	switch format {
	case ReturnFormatMarkdown:
		return formatMarkdown(results)
	case ReturnFormatHTML:
		return formatHTML(results)
	default:
		return formatText(results)
	}
}

func formatMarkdown(results []Result) string {
	entries := make([]string, 0, len(results))
	for i, result := range results {
		entry := fmt.Sprintf("%d. **%s**\n   %s\n   %s",
			i+1, titleOrUntitled(result), result.URL, result.Description)
		if result.Date != "" {
			entry += "\n   Date: " + result.Date
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, "\n\n")
}

func formatText(results []Result) string {
	entries := make([]string, 0, len(results))
	for i, result := range results {
		entry := fmt.Sprintf("%d. %s\n   %s\n   %s",
			i+1, titleOrUntitled(result), result.URL, result.Description)
		if result.Date != "" {
			entry += "\n   Date: " + result.Date
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, "\n\n")
}

func formatHTML(results []Result) string {
	var sb strings.Builder
	sb.WriteString("<ol>")
	for _, result := range results {
		sb.WriteString("<li><strong>")
		sb.WriteString(titleOrUntitled(result))
		sb.WriteString("</strong><br>")
		fmt.Fprintf(&sb, `<a href="%s">%s</a><br>`, result.URL, result.URL)
		sb.WriteString(result.Description)
		if result.Date != "" {
			sb.WriteString("<br>Date: " + result.Date)
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ol>")
	return sb.String()
}

func titleOrUntitled(result Result) string {
	if result.Title == "" {
		return "Untitled"
	}
	return result.Title
}
