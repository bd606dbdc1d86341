// Package styledtext converts a parsed Markdown document tree into styled
// text runs for a native rich-text display, and into an intermediate
// inline-markup string per block. The package does not parse Markdown; it
// consumes the mdast tree built by an upstream parser.
package styledtext

import (
	"errors"
	"fmt"

	"github.com/styledmark/styledmark/internal/mdast"
)

// ErrUnsupportedBlock is returned by Generate in strict mode when a block
// kind has no style mapping.
var ErrUnsupportedBlock = errors.New("unsupported block kind")

// InlineExtension renders a custom inline fragment to inline markup.
type InlineExtension func(mdast.CustomInline) string

// Generator renders mdast trees using an immutable configuration. A
// Generator is safe for concurrent use once constructed, as long as each
// call owns its run slice.
type Generator struct {
	cfg        Config
	extensions map[string]InlineExtension
}

// New creates a Generator. The configuration is validated here: an
// unresolvable font binding is a fatal configuration error, not something
// to substitute silently during rendering.
func New(cfg Config) (*Generator, error) {
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("styled-text configuration: %w", err)
	}
	return &Generator{
		cfg:        cfg,
		extensions: make(map[string]InlineExtension),
	}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// RegisterExtension installs a renderer for CustomInline fragments with
// the given name, replacing the default placeholder output. Registration
// is not synchronized; install extensions before sharing the Generator
// across goroutines.
func (g *Generator) RegisterExtension(name string, fn InlineExtension) {
	g.extensions[name] = fn
}

// Generate appends the styled runs for block to runs and returns the
// extended slice. Callers must use the returned slice as the
// authoritative result. Existing runs are never read or reordered; a
// block's run is either fully appended or not at all.
func (g *Generator) Generate(block mdast.Block, runs []Run) ([]Run, error) {
	switch b := block.(type) {
	case mdast.Document:
		return g.GenerateAll(b.Children, runs)
	case mdast.Heading:
		run := Run{
			Text:       g.InlineMarkup(b.Content),
			Attributes: headingAttributes(g.cfg, b.Level),
		}
		return append(runs, run), nil
	case mdast.Paragraph:
		run := Run{
			Text:       g.InlineMarkup(b.Content),
			Attributes: paragraphAttributes(g.cfg),
		}
		return append(runs, run), nil
	default:
		if g.cfg.Options.StrictBlocks {
			return runs, fmt.Errorf("%w: %s", ErrUnsupportedBlock, block.Kind())
		}
		// Lenient policy: kinds without a style mapping emit nothing.
		return runs, nil
	}
}

// GenerateAll folds Generate over blocks in document order.
func (g *Generator) GenerateAll(blocks []mdast.Block, runs []Run) ([]Run, error) {
	for _, b := range blocks {
		var err error
		runs, err = g.Generate(b, runs)
		if err != nil {
			return runs, err
		}
	}
	return runs, nil
}
