// Package tools implements the MCP tools that expose the styled-text
// renderer: Markdown source in, styled runs or per-block inline markup out.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/styledmark/styledmark/internal/styledtext"
)

// RegisterAll registers all available tools with the MCP server. cfg is
// the base generator configuration; individual calls may override parts of
// it per request.
func RegisterAll(srv *mcp.Server, cfg styledtext.Config) {
	RegisterRenderStyledText(srv, cfg)
	RegisterRenderInlineMarkup(srv, cfg)
}
