package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/styledmark/styledmark/internal/styledtext"
)

func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}

func TestHandleRenderStyledText(t *testing.T) {
	cfg := styledtext.DefaultConfig()
	ctx := context.Background()

	t.Run("heading and paragraph", func(t *testing.T) {
		input := RenderStyledTextInput{Markdown: "# Title\n\na paragraph"}

		_, result, err := HandleRenderStyledText(ctx, &mcp.CallToolRequest{}, input, cfg)
		if err != nil {
			t.Fatalf("HandleRenderStyledText() error = %v", err)
		}

		output, ok := result.(RenderStyledTextOutput)
		if !ok {
			t.Fatalf("result type = %T, want RenderStyledTextOutput", result)
		}
		if len(output.Runs) != 2 {
			t.Fatalf("got %d runs, want 2", len(output.Runs))
		}
		if output.Runs[0].Text != "Title" {
			t.Errorf("run 0 text = %q, want %q", output.Runs[0].Text, "Title")
		}
		if output.Runs[0].Attributes.FontSize != 28 {
			t.Errorf("heading font size = %g, want 28", output.Runs[0].Attributes.FontSize)
		}
		if output.Runs[0].Attributes.HeadingLevel != 1 {
			t.Errorf("heading level = %d, want 1", output.Runs[0].Attributes.HeadingLevel)
		}
		if output.Runs[1].Attributes.FontSize != 14 {
			t.Errorf("paragraph font size = %g, want 14", output.Runs[1].Attributes.FontSize)
		}
	})

	t.Run("font overrides", func(t *testing.T) {
		input := RenderStyledTextInput{
			Markdown:   "hello",
			FontSize:   floatPtr(10),
			FontFamily: strPtr("Helvetica"),
			FontColor:  strPtr("#112233"),
		}

		_, result, err := HandleRenderStyledText(ctx, &mcp.CallToolRequest{}, input, cfg)
		if err != nil {
			t.Fatalf("HandleRenderStyledText() error = %v", err)
		}

		output := result.(RenderStyledTextOutput)
		if len(output.Runs) != 1 {
			t.Fatalf("got %d runs, want 1", len(output.Runs))
		}
		a := output.Runs[0].Attributes
		if a.FontSize != 10 || a.FontFamily != "Helvetica" || a.Foreground != "#112233" {
			t.Errorf("override attributes = %+v", a)
		}
	})

	t.Run("empty markdown", func(t *testing.T) {
		input := RenderStyledTextInput{Markdown: "   "}

		_, _, err := HandleRenderStyledText(ctx, &mcp.CallToolRequest{}, input, cfg)
		if err == nil {
			t.Fatal("expected error for empty markdown")
		}
		if !strings.Contains(err.Error(), "markdown is required") {
			t.Errorf("error = %v, want mention of required markdown", err)
		}
	})

	t.Run("invalid font override fails loudly", func(t *testing.T) {
		input := RenderStyledTextInput{
			Markdown: "hello",
			FontSize: floatPtr(-1),
		}

		_, _, err := HandleRenderStyledText(ctx, &mcp.CallToolRequest{}, input, cfg)
		if err == nil {
			t.Fatal("expected error for invalid font size")
		}
	})
}
