package styledtext

// Run is a contiguous piece of text paired with a fixed attribute set,
// ready for a native rich-text display layer. The run sequence produced by
// a Generator is always in document order.
type Run struct {
	Text       string     `json:"text"`
	Attributes Attributes `json:"attributes"`
}
