package styledtext

// LineBreakMode names the line-breaking policy of a styled run.
type LineBreakMode string

// LineBreakWordWrap wraps at word boundaries.
const LineBreakWordWrap LineBreakMode = "word_wrap"

// WritingDirection names the base writing direction of a styled run.
type WritingDirection string

// WritingLeftToRight is left-to-right text.
const WritingLeftToRight WritingDirection = "ltr"

// Attributes is the fixed attribute set attached to a styled run.
type Attributes struct {
	Foreground             string           `json:"foreground"`
	FontFamily             string           `json:"font_family"`
	FontSize               float64          `json:"font_size"`
	ParagraphSpacingBefore float64          `json:"paragraph_spacing_before"`
	ParagraphSpacing       float64          `json:"paragraph_spacing"`
	MinimumLineHeight      float64          `json:"minimum_line_height"`
	// MaximumLineHeight of 0 means the line height is unconstrained.
	MaximumLineHeight  float64          `json:"maximum_line_height,omitempty"`
	LineHeightMultiple float64          `json:"line_height_multiple,omitempty"`
	LineBreakMode      LineBreakMode    `json:"line_break_mode"`
	WritingDirection   WritingDirection `json:"writing_direction"`
	HyphenationFactor  float64          `json:"hyphenation_factor"`
	// HeadingLevel is 1-6 for heading runs and 0 otherwise. It tags the
	// run's structural role for consumers that expose document structure.
	HeadingLevel int `json:"heading_level,omitempty"`
}

// Sizing rules of the default visual contract. The exact factors matter
// for output equivalence across implementations.
const (
	headingSizeFactor       = 2.0
	paragraphSpacingFactor  = 0.7
	minimumLineHeightFactor = 1.2
)

// baseAttributes fills the attributes shared by all block styles for the
// given computed font size.
func baseAttributes(cfg Config, fontSize float64) Attributes {
	return Attributes{
		Foreground:        cfg.FontColor,
		FontFamily:        cfg.FontFamily,
		FontSize:          fontSize,
		MinimumLineHeight: minimumLineHeightFactor * fontSize,
		LineBreakMode:     LineBreakWordWrap,
		WritingDirection:  WritingLeftToRight,
	}
}

// headingAttributes computes the attribute set for a heading of the given
// level. Pure function of (level, cfg); never fails.
func headingAttributes(cfg Config, level int) Attributes {
	a := baseAttributes(cfg, headingSizeFactor*cfg.FontSize)
	a.ParagraphSpacing = cfg.FontSize
	a.HeadingLevel = level
	return a
}

// paragraphAttributes computes the attribute set for a paragraph.
func paragraphAttributes(cfg Config) Attributes {
	a := baseAttributes(cfg, cfg.FontSize)
	a.ParagraphSpacing = paragraphSpacingFactor * cfg.FontSize
	return a
}
