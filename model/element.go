package model

import "strings"

// Paragraph is one block of the source document. Its spans are kept in
// reading order.
type Paragraph struct {
	Spans []*Span
	Style ParagraphStyle
}

// AddSpan appends a span and returns it.
func (p *Paragraph) AddSpan(value string, style TextStyle) *Span {
	s := &Span{Value: value, Style: style}
	p.Spans = append(p.Spans, s)
	return s
}

// LastSpan returns the final span, or nil for an empty paragraph.
func (p *Paragraph) LastSpan() *Span {
	if len(p.Spans) == 0 {
		return nil
	}
	return p.Spans[len(p.Spans)-1]
}

// Text concatenates span values with no separator.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, s := range p.Spans {
		b.WriteString(s.Value)
	}
	return b.String()
}

// Span is a run of text with uniform style.
type Span struct {
	Value string
	Style TextStyle
}

// TextStyle represents text styling
type TextStyle struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strike        bool
	VerticalAlign VerticalAlignment
	Font          int
	FontSize      float64 // points; 0 means unspecified
	Foreground    *Color
	Background    *Color
}

// Equal reports whether two styles would render identically.
func (s TextStyle) Equal(o TextStyle) bool {
	return s.Bold == o.Bold &&
		s.Italic == o.Italic &&
		s.Underline == o.Underline &&
		s.Strike == o.Strike &&
		s.VerticalAlign == o.VerticalAlign &&
		s.Font == o.Font &&
		s.FontSize == o.FontSize &&
		colorEqual(s.Foreground, o.Foreground) &&
		colorEqual(s.Background, o.Background)
}

func colorEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// VerticalAlignment is the baseline shift of a span.
type VerticalAlignment int

const (
	VAlignBaseline VerticalAlignment = iota
	VAlignSuper
	VAlignSub
)

// ParagraphStyle holds paragraph-level formatting. Indents are in twips.
type ParagraphStyle struct {
	Alignment   TextAlignment
	IndentLeft  int
	IndentRight int
	IndentFirst int
}

// TextAlignment represents text alignment
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a TextAlignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}
