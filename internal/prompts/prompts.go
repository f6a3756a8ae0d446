// Package prompts provides centralized management for the tool
// descriptions exposed by the Jina MCP server.
package prompts

const (
	// JinaReaderToolDescription is the description for the jina_reader tool.
	JinaReaderToolDescription = `- Extracts the content of a web page using the Jina Reader API
- Returns clean, LLM-friendly text extracted from the page
- Supports multiple return formats: Default, Markdown, HTML, Text, Screenshot, Pageshot
- Can append a summary of the page's links or images to the output
- Set useReaderLM to process the page with the ReaderLM v2 model

Usage notes:
  - The url argument must be an absolute HTTP or HTTPS URL
  - Set the JINA_API_KEY environment variable for higher rate limits`

	// JinaSearchToolDescription is the description for the jina_search tool.
	JinaSearchToolDescription = `- Searches the web using the Jina Search API
- Returns a formatted list of results with title, URL, description, and date
- Supports markdown, text, and html return formats (default: markdown)
- count limits how many results are returned (default: 5)
- siteFilter restricts results to a single domain, e.g. "example.com"

Usage notes:
  - The query argument must be a non-empty string
  - Set the JINA_API_KEY environment variable for higher rate limits`
)
