// Package mdast defines the parsed Markdown document tree consumed by the
// styled-text generator. Trees are produced by an external parser (see
// internal/markdown for the goldmark bridge); this package never parses
// Markdown itself and never mutates a tree after construction.
package mdast

// Block is a structural unit of a Markdown document. The set of kinds is
// closed; rendering code dispatches with exhaustive type switches.
type Block interface {
	// Kind names the block kind, e.g. "heading". Used in error messages
	// and tool output.
	Kind() string
	block()
}

// Document is the root block holding an ordered sequence of child blocks.
type Document struct {
	Children []Block
}

// Heading is a heading block with level 1-6.
type Heading struct {
	Level   int
	Content Text
}

// Paragraph is a plain paragraph block.
type Paragraph struct {
	Content Text
}

// CodeBlock is an indented or fenced code block. Carried through the tree
// but not styled by the generator.
type CodeBlock struct {
	// Info is the fenced code block info string (e.g. the language),
	// empty for indented code blocks.
	Info    string
	Literal string
}

// Blockquote is a quoted group of blocks.
type Blockquote struct {
	Children []Block
}

// List is an ordered or unordered list.
type List struct {
	Ordered bool
	// Start is the first item number of an ordered list.
	Start int
	Items []ListItem
}

// ListItem is one item of a List. It is not a Block itself; items only
// appear inside their list.
type ListItem struct {
	Children []Block
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

// HTMLBlock is a raw block-level HTML fragment.
type HTMLBlock struct {
	Literal string
}

func (Document) Kind() string      { return "document" }
func (Heading) Kind() string       { return "heading" }
func (Paragraph) Kind() string     { return "paragraph" }
func (CodeBlock) Kind() string     { return "code_block" }
func (Blockquote) Kind() string    { return "blockquote" }
func (List) Kind() string          { return "list" }
func (ThematicBreak) Kind() string { return "thematic_break" }
func (HTMLBlock) Kind() string     { return "html_block" }

func (Document) block()      {}
func (Heading) block()       {}
func (Paragraph) block()     {}
func (CodeBlock) block()     {}
func (Blockquote) block()    {}
func (List) block()          {}
func (ThematicBreak) block() {}
func (HTMLBlock) block()     {}
