package model

import "testing"

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc.Codepage != DefaultCodepage {
		t.Errorf("Codepage = %d, want %d", doc.Codepage, DefaultCodepage)
	}
	if doc.ParagraphCount() != 0 {
		t.Errorf("ParagraphCount() = %d, want 0", doc.ParagraphCount())
	}
	if doc.Fonts == nil {
		t.Error("expected non-nil font table")
	}
}

func TestDocumentText(t *testing.T) {
	doc := NewDocument()
	p := doc.AddParagraph(ParagraphStyle{})
	p.AddSpan("Hello, ", TextStyle{})
	p.AddSpan("world", TextStyle{Bold: true})
	doc.AddParagraph(ParagraphStyle{})
	doc.AddParagraph(ParagraphStyle{}).AddSpan("end", TextStyle{})

	if got, want := doc.Text(), "Hello, world\n\nend"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	var nilDoc *Document
	if got := nilDoc.Text(); got != "" {
		t.Errorf("nil Text() = %q, want empty", got)
	}
}

func TestParagraphLastSpan(t *testing.T) {
	p := &Paragraph{}
	if p.LastSpan() != nil {
		t.Error("expected nil LastSpan for empty paragraph")
	}
	p.AddSpan("a", TextStyle{})
	s := p.AddSpan("b", TextStyle{})
	if p.LastSpan() != s {
		t.Error("LastSpan() did not return the final span")
	}
}

func TestDocumentColor(t *testing.T) {
	doc := NewDocument()
	doc.Colors = []Color{{}, {R: 255}}

	tests := []struct {
		index int
		want  *Color
	}{
		{-1, nil},
		{0, &Color{}},
		{1, &Color{R: 255}},
		{2, nil},
	}
	for _, tt := range tests {
		got := doc.Color(tt.index)
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Errorf("Color(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestTextStyleEqual(t *testing.T) {
	red := &Color{R: 255}
	otherRed := &Color{R: 255}
	blue := &Color{B: 255}

	tests := []struct {
		name string
		a, b TextStyle
		want bool
	}{
		{"zero", TextStyle{}, TextStyle{}, true},
		{"bold differs", TextStyle{Bold: true}, TextStyle{}, false},
		{"same color by value", TextStyle{Foreground: red}, TextStyle{Foreground: otherRed}, true},
		{"different color", TextStyle{Foreground: red}, TextStyle{Foreground: blue}, false},
		{"nil vs set", TextStyle{Background: red}, TextStyle{}, false},
		{"font size", TextStyle{FontSize: 12}, TextStyle{FontSize: 11}, false},
		{"vertical align", TextStyle{VerticalAlign: VAlignSuper}, TextStyle{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextAlignmentString(t *testing.T) {
	tests := []struct {
		a    TextAlignment
		want string
	}{
		{AlignLeft, "left"},
		{AlignCenter, "center"},
		{AlignRight, "right"},
		{AlignJustify, "justify"},
		{TextAlignment(42), "left"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("TextAlignment(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
