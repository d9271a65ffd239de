package model

import "strings"

// DefaultCodepage is the ANSI codepage assumed until the document declares one.
const DefaultCodepage = 1252

// Document represents a complete RTF document with extracted structure
type Document struct {
	Codepage    int
	DefaultFont int
	Fonts       map[int]Font
	Colors      []Color
	Paragraphs  []*Paragraph
}

// Font is one entry of the document font table.
type Font struct {
	Name    string
	Family  string // roman, swiss, modern, ...
	Charset int
	// HasCharset reports whether \fcharset was present; charset 0 is ANSI.
	HasCharset bool
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Codepage:   DefaultCodepage,
		Fonts:      make(map[int]Font),
		Paragraphs: make([]*Paragraph, 0),
	}
}

// AddParagraph appends an empty paragraph with the given style and returns it.
func (d *Document) AddParagraph(style ParagraphStyle) *Paragraph {
	p := &Paragraph{Style: style}
	d.Paragraphs = append(d.Paragraphs, p)
	return p
}

// ParagraphCount returns the number of paragraphs
func (d *Document) ParagraphCount() int {
	return len(d.Paragraphs)
}

// Color returns the color table entry at index, or nil when the index is
// out of range. Index 0 conventionally means "auto".
func (d *Document) Color(index int) *Color {
	if index < 0 || index >= len(d.Colors) {
		return nil
	}
	c := d.Colors[index]
	return &c
}

// Text returns the paragraphs joined by newlines.
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	lines := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}
