package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/styledmark/styledmark/internal/markdown"
	"github.com/styledmark/styledmark/internal/styledtext"
)

type RenderStyledTextInput struct {
	Markdown   string   `json:"markdown" jsonschema:"Markdown source to render" long:"markdown" description:"Markdown source to render"`
	FontSize   *float64 `json:"font_size,omitempty" jsonschema:"Base font size override in points. Headings render at twice this size. Default is 14." long:"font-size" description:"Base font size override in points"`
	FontFamily *string  `json:"font_family,omitempty" jsonschema:"Font family override, e.g. 'Helvetica, sans-serif'" long:"font-family" description:"Font family override"`
	FontColor  *string  `json:"font_color,omitempty" jsonschema:"Font color override in #RRGGBB format" long:"font-color" description:"Font color override in #RRGGBB format"`
}

type RenderStyledTextOutput struct {
	Runs []styledtext.Run `json:"runs"`
}

func RegisterRenderStyledText(srv *mcp.Server, cfg styledtext.Config) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "render_styled_text",
			Description: "Renders Markdown into an ordered sequence of styled text runs (text plus font, color and paragraph spacing attributes) consumable by a native rich-text display.",
			InputSchema: GenerateSchema[RenderStyledTextInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:          "Render Styled Text",
				ReadOnlyHint:   true,
				IdempotentHint: true,
			},
		},
		func(ctx context.Context, request *mcp.CallToolRequest, input RenderStyledTextInput) (*mcp.CallToolResult, any, error) {
			return HandleRenderStyledText(ctx, request, input, cfg)
		},
	)
}

func HandleRenderStyledText(ctx context.Context, request *mcp.CallToolRequest, input RenderStyledTextInput, cfg styledtext.Config) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return nil, nil, fmt.Errorf("markdown is required")
	}

	gen, err := styledtext.New(overrideConfig(cfg, input.FontSize, input.FontFamily, input.FontColor))
	if err != nil {
		return nil, nil, err
	}

	doc, err := markdown.Parse([]byte(input.Markdown))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	runs, err := gen.Generate(doc, nil)
	if err != nil {
		return nil, nil, err
	}

	return nil, RenderStyledTextOutput{Runs: runs}, nil
}

// overrideConfig applies per-call overrides to the base configuration.
// Validation of the merged result happens in styledtext.New.
func overrideConfig(cfg styledtext.Config, size *float64, family, color *string) styledtext.Config {
	if size != nil {
		cfg.FontSize = *size
	}
	if family != nil {
		cfg.FontFamily = *family
	}
	if color != nil {
		cfg.FontColor = *color
	}
	return cfg
}
