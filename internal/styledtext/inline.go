package styledtext

import (
	"html"
	"strings"

	"github.com/styledmark/styledmark/internal/mdast"
)

// InlineMarkup renders inline content to a single escaped markup string,
// one rule per fragment kind, concatenated left to right. Literal user
// text is entity-encoded; structural markup (raw HTML tags, link
// destinations, titles) is inserted verbatim. Callers embedding the result
// in a security-sensitive context must sanitize it themselves.
func (g *Generator) InlineMarkup(text mdast.Text) string {
	var sb strings.Builder
	for _, f := range text {
		g.renderFragment(&sb, f)
	}
	return sb.String()
}

func (g *Generator) renderFragment(sb *strings.Builder, f mdast.Fragment) {
	switch n := f.(type) {
	case mdast.PlainText:
		sb.WriteString(escapeText(n.Value))
	case mdast.CodeSpan:
		sb.WriteString("<code>")
		sb.WriteString(html.EscapeString(n.Value))
		sb.WriteString("</code>")
	case mdast.Emphasis:
		sb.WriteString("<em>")
		sb.WriteString(g.InlineMarkup(n.Content))
		sb.WriteString("</em>")
	case mdast.Strong:
		sb.WriteString("<strong>")
		sb.WriteString(g.InlineMarkup(n.Content))
		sb.WriteString("</strong>")
	case mdast.Link:
		sb.WriteString(`<a href="`)
		if n.Destination != nil {
			sb.WriteString(*n.Destination)
		}
		sb.WriteString(`"`)
		if n.Title != nil {
			sb.WriteString(` title="`)
			sb.WriteString(*n.Title)
			sb.WriteString(`"`)
		}
		sb.WriteString(`>`)
		sb.WriteString(g.InlineMarkup(n.Content))
		sb.WriteString("</a>")
	case mdast.AutoLink:
		href := n.Value
		if n.Kind == mdast.AutoLinkEmail {
			href = "mailto:" + n.Value
		}
		sb.WriteString(`<a href="`)
		sb.WriteString(href)
		sb.WriteString(`">`)
		sb.WriteString(n.Value)
		sb.WriteString("</a>")
	case mdast.Image:
		if n.Destination == nil {
			// Nothing to point at; fall back to the alt text inline.
			sb.WriteString(g.InlineMarkup(n.Alt))
			return
		}
		sb.WriteString(`<img src="`)
		sb.WriteString(*n.Destination)
		sb.WriteString(`" alt="`)
		sb.WriteString(altText(n.Alt))
		sb.WriteString(`"`)
		if n.Title != nil {
			sb.WriteString(` title="`)
			sb.WriteString(*n.Title)
			sb.WriteString(`"`)
		}
		sb.WriteString(`/>`)
	case mdast.RawHTML:
		// Verbatim by contract; the tag is already markup.
		sb.WriteString(n.Tag)
	case mdast.DelimiterRun:
		ch := string(n.Char)
		switch n.Char {
		case '<':
			ch = "&lt;"
		case '>':
			ch = "&gt;"
		}
		sb.WriteString(strings.Repeat(ch, n.Count))
	case mdast.SoftBreak:
		sb.WriteByte('\n')
	case mdast.HardBreak:
		sb.WriteString("<br/>")
	case mdast.CustomInline:
		if fn, ok := g.extensions[n.Name]; ok {
			sb.WriteString(fn(n))
			return
		}
		sb.WriteString("<custom/>")
	}
}

// escapeText decodes named character references from the source, then
// re-encodes the five predefined XML entities. Decoding first keeps source
// entities from being double-escaped.
func escapeText(s string) string {
	return html.EscapeString(html.UnescapeString(s))
}

// altText flattens inline content to entity-encoded plain text, suitable
// for an attribute value. Markup-producing kinds contribute only their
// textual content; raw HTML and custom fragments contribute nothing.
func altText(text mdast.Text) string {
	var sb strings.Builder
	for _, f := range text {
		switch n := f.(type) {
		case mdast.PlainText:
			sb.WriteString(escapeText(n.Value))
		case mdast.CodeSpan:
			sb.WriteString(html.EscapeString(n.Value))
		case mdast.Emphasis:
			sb.WriteString(altText(n.Content))
		case mdast.Strong:
			sb.WriteString(altText(n.Content))
		case mdast.Link:
			sb.WriteString(altText(n.Content))
		case mdast.AutoLink:
			sb.WriteString(n.Value)
		case mdast.Image:
			sb.WriteString(altText(n.Alt))
		case mdast.DelimiterRun:
			ch := string(n.Char)
			switch n.Char {
			case '<':
				ch = "&lt;"
			case '>':
				ch = "&gt;"
			}
			sb.WriteString(strings.Repeat(ch, n.Count))
		case mdast.SoftBreak, mdast.HardBreak:
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
