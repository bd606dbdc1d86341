package mdast

// Text is the inline content of a block: an ordered fragment sequence.
type Text []Fragment

// Fragment is one piece of inline content. Like Block, this is a closed
// sum type; CustomInline is the designated extension point.
type Fragment interface {
	fragment()
}

// PlainText is literal text. The value may still contain named character
// references from the source; the renderer decodes and re-encodes them.
type PlainText struct {
	Value string
}

// CodeSpan is inline code.
type CodeSpan struct {
	Value string
}

// Emphasis is emphasized (italic) inline content.
type Emphasis struct {
	Content Text
}

// Strong is strongly emphasized (bold) inline content.
type Strong struct {
	Content Text
}

// Link is an inline link. Destination and Title are nil when absent in the
// source.
type Link struct {
	Content     Text
	Destination *string
	Title       *string
}

// AutoLinkKind distinguishes URI and email autolinks.
type AutoLinkKind int

const (
	AutoLinkURI AutoLinkKind = iota
	AutoLinkEmail
)

// AutoLink is an automatically linked URI or email address.
type AutoLink struct {
	Kind  AutoLinkKind
	Value string
}

// Image is an inline image. Destination and Title are nil when absent.
type Image struct {
	Alt         Text
	Destination *string
	Title       *string
}

// RawHTML is an inline HTML tag, passed through verbatim by the renderer.
type RawHTML struct {
	Tag string
}

// DelimiterRun is an unresolved emphasis delimiter run. Parsers that fully
// resolve emphasis never emit it, but callers constructing trees by hand
// may.
type DelimiterRun struct {
	Char     rune
	Count    int
	CanOpen  bool
	CanClose bool
}

// SoftBreak is a soft line break.
type SoftBreak struct{}

// HardBreak is a hard line break.
type HardBreak struct{}

// CustomInline is a fragment kind supplied by an extension. The generator
// renders it through a registered handler, falling back to a placeholder.
type CustomInline struct {
	Name string
}

func (PlainText) fragment()    {}
func (CodeSpan) fragment()     {}
func (Emphasis) fragment()     {}
func (Strong) fragment()       {}
func (Link) fragment()         {}
func (AutoLink) fragment()     {}
func (Image) fragment()        {}
func (RawHTML) fragment()      {}
func (DelimiterRun) fragment() {}
func (SoftBreak) fragment()    {}
func (HardBreak) fragment()    {}
func (CustomInline) fragment() {}
