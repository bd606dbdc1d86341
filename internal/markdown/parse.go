// Package markdown bridges the goldmark parser to the mdast document tree.
// goldmark owns all Markdown syntax concerns; this package only converts
// its AST into the renderer's closed block and fragment kinds.
package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/styledmark/styledmark/internal/mdast"
)

// Parse parses Markdown source with goldmark (GFM extensions enabled) and
// converts the resulting AST into an mdast document.
func Parse(source []byte) (mdast.Document, error) {
	gm := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)
	root := gm.Parser().Parse(text.NewReader(source))

	doc, ok := root.(*gast.Document)
	if !ok {
		return mdast.Document{}, fmt.Errorf("unexpected goldmark root node %T", root)
	}
	return mdast.Document{Children: fromChildren(doc, source)}, nil
}

// fromChildren converts the block-level children of a goldmark node.
// Node kinds this renderer has no counterpart for are dropped here; the
// generator's strict mode only sees kinds the tree can represent.
func fromChildren(n gast.Node, source []byte) []mdast.Block {
	var blocks []mdast.Block
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if b, ok := fromBlock(c, source); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func fromBlock(n gast.Node, source []byte) (mdast.Block, bool) {
	switch b := n.(type) {
	case *gast.Heading:
		return mdast.Heading{Level: b.Level, Content: fromInlines(b, source)}, true
	case *gast.Paragraph:
		return mdast.Paragraph{Content: fromInlines(b, source)}, true
	case *gast.TextBlock:
		// Tight list items hold their text in a TextBlock rather than a
		// Paragraph; the distinction does not survive the conversion.
		return mdast.Paragraph{Content: fromInlines(b, source)}, true
	case *gast.CodeBlock:
		return mdast.CodeBlock{Literal: blockLines(b, source)}, true
	case *gast.FencedCodeBlock:
		return mdast.CodeBlock{
			Info:    fencedInfo(b, source),
			Literal: blockLines(b, source),
		}, true
	case *gast.Blockquote:
		return mdast.Blockquote{Children: fromChildren(b, source)}, true
	case *gast.List:
		return fromList(b, source), true
	case *gast.ThematicBreak:
		return mdast.ThematicBreak{}, true
	case *gast.HTMLBlock:
		return mdast.HTMLBlock{Literal: htmlBlockLiteral(b, source)}, true
	}
	return nil, false
}

func fromList(n *gast.List, source []byte) mdast.List {
	list := mdast.List{
		Ordered: n.IsOrdered(),
		Start:   n.Start,
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if item, ok := c.(*gast.ListItem); ok {
			list.Items = append(list.Items, mdast.ListItem{
				Children: fromChildren(item, source),
			})
		}
	}
	return list
}

// fromInlines converts the inline children of a block node into a Text.
func fromInlines(n gast.Node, source []byte) mdast.Text {
	var out mdast.Text
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch i := c.(type) {
		case *gast.Text:
			out = append(out, mdast.PlainText{Value: string(i.Segment.Value(source))})
			if i.HardLineBreak() {
				out = append(out, mdast.HardBreak{})
			} else if i.SoftLineBreak() {
				out = append(out, mdast.SoftBreak{})
			}
		case *gast.String:
			out = append(out, mdast.PlainText{Value: string(i.Value)})
		case *gast.CodeSpan:
			out = append(out, mdast.CodeSpan{Value: codeSpanText(i, source)})
		case *gast.Emphasis:
			content := fromInlines(i, source)
			if i.Level >= 2 {
				out = append(out, mdast.Strong{Content: content})
			} else {
				out = append(out, mdast.Emphasis{Content: content})
			}
		case *gast.Link:
			out = append(out, mdast.Link{
				Content:     fromInlines(i, source),
				Destination: optionalString(i.Destination),
				Title:       optionalString(i.Title),
			})
		case *gast.AutoLink:
			kind := mdast.AutoLinkURI
			if i.AutoLinkType == gast.AutoLinkEmail {
				kind = mdast.AutoLinkEmail
			}
			out = append(out, mdast.AutoLink{Kind: kind, Value: string(i.URL(source))})
		case *gast.Image:
			out = append(out, mdast.Image{
				Alt:         fromInlines(i, source),
				Destination: optionalString(i.Destination),
				Title:       optionalString(i.Title),
			})
		case *gast.RawHTML:
			out = append(out, mdast.RawHTML{Tag: rawHTMLText(i, source)})
		default:
			// Inline kinds from extensions (e.g. strikethrough) still
			// carry renderable text; flatten them rather than dropping
			// their content.
			if c.ChildCount() > 0 {
				out = append(out, fromInlines(c, source)...)
			}
		}
	}
	return out
}

func codeSpanText(n *gast.CodeSpan, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return sb.String()
}

func rawHTMLText(n *gast.RawHTML, source []byte) string {
	var sb strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

func blockLines(n gast.Node, source []byte) string {
	var sb strings.Builder
	for i := 0; i < n.Lines().Len(); i++ {
		seg := n.Lines().At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

func fencedInfo(n *gast.FencedCodeBlock, source []byte) string {
	if n.Info == nil {
		return ""
	}
	return string(n.Info.Segment.Value(source))
}

func htmlBlockLiteral(n *gast.HTMLBlock, source []byte) string {
	var sb strings.Builder
	sb.WriteString(blockLines(n, source))
	if n.HasClosure() {
		sb.Write(n.ClosureLine.Value(source))
	}
	return sb.String()
}

func optionalString(b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	s := string(b)
	return &s
}
