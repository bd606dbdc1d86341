package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/styledmark/styledmark/internal/markdown"
	"github.com/styledmark/styledmark/internal/mdast"
	"github.com/styledmark/styledmark/internal/styledtext"
)

type RenderInlineMarkupInput struct {
	Markdown string `json:"markdown" jsonschema:"Markdown source to render" long:"markdown" description:"Markdown source to render"`
}

// InlineMarkupBlock is one rendered block: its kind, heading level (for
// headings) and the escaped inline-markup string.
type InlineMarkupBlock struct {
	Kind   string `json:"kind"`
	Level  int    `json:"level,omitempty"`
	Markup string `json:"markup"`
}

type RenderInlineMarkupOutput struct {
	Blocks []InlineMarkupBlock `json:"blocks"`
}

func RegisterRenderInlineMarkup(srv *mcp.Server, cfg styledtext.Config) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "render_inline_markup",
			Description: "Renders Markdown into per-block inline markup strings (HTML-like, entity-escaped), the intermediate form of the styled-text renderer. Useful when the caller does its own styling.",
			InputSchema: GenerateSchema[RenderInlineMarkupInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:          "Render Inline Markup",
				ReadOnlyHint:   true,
				IdempotentHint: true,
			},
		},
		func(ctx context.Context, request *mcp.CallToolRequest, input RenderInlineMarkupInput) (*mcp.CallToolResult, any, error) {
			return HandleRenderInlineMarkup(ctx, request, input, cfg)
		},
	)
}

func HandleRenderInlineMarkup(ctx context.Context, request *mcp.CallToolRequest, input RenderInlineMarkupInput, cfg styledtext.Config) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return nil, nil, fmt.Errorf("markdown is required")
	}

	gen, err := styledtext.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	doc, err := markdown.Parse([]byte(input.Markdown))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	var blocks []InlineMarkupBlock
	for _, b := range doc.Children {
		switch n := b.(type) {
		case mdast.Heading:
			blocks = append(blocks, InlineMarkupBlock{
				Kind:   n.Kind(),
				Level:  n.Level,
				Markup: gen.InlineMarkup(n.Content),
			})
		case mdast.Paragraph:
			blocks = append(blocks, InlineMarkupBlock{
				Kind:   n.Kind(),
				Markup: gen.InlineMarkup(n.Content),
			})
		}
	}

	return nil, RenderInlineMarkupOutput{Blocks: blocks}, nil
}
