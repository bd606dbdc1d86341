package opts

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/styledmark/styledmark/internal/opts/typed_flags"
	"github.com/styledmark/styledmark/internal/tools"
)

// Options defines the command-line options for the styledmark binary.
type Options struct {
	Version bool `long:"version" short:"v" description:"Show version information and exit"`

	Run        RunCmd        `command:"run" description:"Run the MCP server"`
	Completion CompletionCmd `command:"completion" description:"Generate completion scripts"`
	Tool       ToolCmd       `command:"tool" description:"Execute a rendering tool directly"`
}

// RunCmd defines the 'run' command
type RunCmd struct {
	Transport typed_flags.Transport `long:"transport" env:"STYLEDMARK_TRANSPORT" description:"Transport type: stdio or http" default:"stdio"`
	Port      int                   `long:"port" env:"STYLEDMARK_PORT" description:"HTTP port (only used with --transport=http)" default:"8787"`
	Host      string                `long:"host" env:"STYLEDMARK_HOST" description:"HTTP host (only used with --transport=http)" default:"localhost"`
	Debug     bool                  `long:"debug" env:"STYLEDMARK_DEBUG" description:"Enable debug logging of tool calls and results to stderr"`
	Theme     string                `long:"theme" env:"STYLEDMARK_THEME" description:"Path to a YAML theme file (uses the embedded default if not specified)"`

	Handler func() error
}

// Execute runs the run command
func (c *RunCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// CompletionCmd holds completion subcommands
type CompletionCmd struct {
	Bash CompletionBashCmd `command:"bash" description:"Generate bash completion script"`
}

// CompletionBashCmd represents the 'completion bash' command
type CompletionBashCmd struct {
	Handler func() error
}

// Execute runs the completion bash command
func (c *CompletionBashCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// ToolCmd holds tool subcommands
type ToolCmd struct {
	RenderStyledText   RenderStyledTextCmd   `command:"render_styled_text" description:"Render Markdown to styled text runs"`
	RenderInlineMarkup RenderInlineMarkupCmd `command:"render_inline_markup" description:"Render Markdown to per-block inline markup"`
}

// RenderStyledTextCmd represents the 'tool render_styled_text' command
type RenderStyledTextCmd struct {
	tools.RenderStyledTextInput
	Handler func(tools.RenderStyledTextInput) error
}

// Execute runs the render_styled_text tool command
func (c *RenderStyledTextCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.RenderStyledTextInput)
	}
	return nil
}

// RenderInlineMarkupCmd represents the 'tool render_inline_markup' command
type RenderInlineMarkupCmd struct {
	tools.RenderInlineMarkupInput
	Handler func(tools.RenderInlineMarkupInput) error
}

// Execute runs the render_inline_markup tool command
func (c *RenderInlineMarkupCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.RenderInlineMarkupInput)
	}
	return nil
}

var GlobalOpts = Options{}

// Parse parses command-line arguments and environment variables.
// It also loads a .env file if present (but doesn't fail if missing).
func Parse() (*flags.Parser, error) {
	// Allows local development with .env files while production uses real
	// environment variables.
	_ = godotenv.Load()

	parser := flags.NewParser(&GlobalOpts, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			switch flagsErr.Type {
			case flags.ErrHelp:
				parser.WriteHelp(os.Stdout)
				os.Exit(0)
			case flags.ErrCommandRequired:
				// No command specified - that's OK, we'll run the server
				return parser, nil
			default:
				return nil, fmt.Errorf("failed to parse options: %w", err)
			}
		}
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}

	return parser, nil
}
