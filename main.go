package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/styledmark/styledmark/internal/completion"
	"github.com/styledmark/styledmark/internal/opts"
	"github.com/styledmark/styledmark/internal/opts/typed_flags"
	"github.com/styledmark/styledmark/internal/styledtext"
	"github.com/styledmark/styledmark/internal/tools"
)

const (
	serverName    = "styledmark"
	serverVersion = "0.1.0"
)

func main() {
	// Wire command handlers before parsing; go-flags executes the active
	// command during Parse.
	opts.GlobalOpts.Run.Handler = runServer
	opts.GlobalOpts.Completion.Bash.Handler = func() error {
		completion.GenerateBash()
		return nil
	}
	opts.GlobalOpts.Tool.RenderStyledText.Handler = runRenderStyledText
	opts.GlobalOpts.Tool.RenderInlineMarkup.Handler = runRenderInlineMarkup

	parser, err := opts.Parse()
	if err != nil {
		log.Fatalf("Failed to parse options: %v", err)
	}

	if opts.GlobalOpts.Version {
		fmt.Printf("%s version %s\n", serverName, serverVersion)
		return
	}

	// No command given: run the server with defaults, like an MCP client
	// launching the bare binary would expect.
	if parser.Active == nil {
		if opts.GlobalOpts.Run.Transport == "" {
			opts.GlobalOpts.Run.Transport = typed_flags.TransportStdio
		}
		if err := runServer(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// debugMiddleware logs all MCP requests and responses when debug is enabled
func debugMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		if req != nil {
			p := req.GetParams()
			j, _ := json.MarshalIndent(p, "", "  ")
			log.Printf("[DEBUG] MCP Request: %s\nParams: %s\n", method, string(j))
		} else {
			log.Printf("[DEBUG] MCP Request: %s\n", method)
		}

		result, err := next(ctx, method, req)

		if err != nil {
			log.Printf("[DEBUG] MCP Response: %s\nError: %v\n", method, err)
		} else if result != nil {
			resultJSON, _ := json.MarshalIndent(result, "", "  ")
			log.Printf("[DEBUG] MCP Response: %s\nResult: %s\n", method, string(resultJSON))
		} else {
			log.Printf("[DEBUG] MCP Response: %s\n", method)
		}

		return result, err
	}
}

// createServer creates and configures a new MCP server instance
func createServer(cfg styledtext.Config) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	if opts.GlobalOpts.Run.Debug {
		srv.AddReceivingMiddleware(debugMiddleware)
	}

	tools.RegisterAll(srv, cfg)

	return srv
}

func runServer() error {
	ctx := context.Background()

	// Load and validate the theme up front: an unresolvable font binding
	// must fail startup, not individual render calls.
	cfg, err := styledtext.LoadConfig(opts.GlobalOpts.Run.Theme)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	// Log to stderr (stdout is used for MCP communication in stdio mode)
	log.Printf("%s v%s initialized\n", serverName, serverVersion)

	srv := createServer(cfg)

	switch opts.GlobalOpts.Run.Transport {
	case typed_flags.TransportStdio:
		log.Println("Using STDIO transport")
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
			return err
		}
	case typed_flags.TransportHTTP:
		addr := fmt.Sprintf("%s:%d", opts.GlobalOpts.Run.Host, opts.GlobalOpts.Run.Port)

		handler := mcp.NewStreamableHTTPHandler(
			func(r *http.Request) *mcp.Server {
				// since we are stateless, we can return the same server instance
				return srv
			},
			&mcp.StreamableHTTPOptions{
				Stateless: true,
			},
		)

		httpServer := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		log.Printf("HTTP server listening on http://%s\n", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported transport: %s", opts.GlobalOpts.Run.Transport)
	}

	return nil
}

func runRenderStyledText(input tools.RenderStyledTextInput) error {
	cfg, err := styledtext.LoadConfig(opts.GlobalOpts.Run.Theme)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	_, result, err := tools.HandleRenderStyledText(context.Background(), &mcp.CallToolRequest{}, input, cfg)
	if err != nil {
		return err
	}
	return printResult(result)
}

func runRenderInlineMarkup(input tools.RenderInlineMarkupInput) error {
	cfg, err := styledtext.LoadConfig(opts.GlobalOpts.Run.Theme)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	_, result, err := tools.HandleRenderInlineMarkup(context.Background(), &mcp.CallToolRequest{}, input, cfg)
	if err != nil {
		return err
	}
	return printResult(result)
}

func printResult(result any) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
