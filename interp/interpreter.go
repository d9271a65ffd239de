package interp

import (
	"strings"
	"unicode/utf16"

	"github.com/tsawler/rtftext/core"
	"github.com/tsawler/rtftext/internal/charset"
	"github.com/tsawler/rtftext/model"
)

// destination says where the text of a group goes.
type destination int

const (
	destBody destination = iota
	destFontTable
	destColorTable
	destSkip
)

// groupState is the formatting scope of one group. Entering a group copies
// the parent's state; leaving it restores the parent's.
type groupState struct {
	dest  destination
	style model.TextStyle
	para  model.ParagraphStyle
	uc    int // fallback characters that follow \uN
}

// fontEntry is the font table entry being read.
type fontEntry struct {
	index int
	font  model.Font
	name  []byte
	open  bool
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithDefaultCodepage sets the codepage assumed until the document
// declares one with \ansicpg or a charset word.
func WithDefaultCodepage(cp int) Option {
	return func(in *Interpreter) {
		if cp > 0 {
			in.doc.Codepage = cp
		}
	}
}

// Interpreter applies RTF semantics to a token stream, appending
// paragraphs and spans to its document.
type Interpreter struct {
	doc   *model.Document
	stack []groupState

	para *model.Paragraph // open paragraph, nil before its first text

	pending  []byte // \'hh bytes not yet decoded
	skip     int    // fallback characters still to drop after \uN
	highSurr rune   // unpaired UTF-16 high surrogate

	font  fontEntry
	color model.Color

	started bool
	ended   bool
	closed  bool
	lastPos int64
}

// New returns an Interpreter that writes into doc.
func New(doc *model.Document, opts ...Option) *Interpreter {
	in := &Interpreter{doc: doc}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Document returns the document being built.
func (in *Interpreter) Document() *model.Document {
	return in.doc
}

// Write interprets one token.
func (in *Interpreter) Write(tok core.Token) error {
	if in.closed {
		return in.fail(tok, ErrClosed)
	}
	in.lastPos = tok.Pos

	if tok.Type == core.TokenEOF {
		return nil
	}

	if in.ended {
		if tok.Type == core.TokenText && strings.Trim(tok.Value, " \t\x00") == "" {
			return nil
		}
		return in.fail(tok, ErrAfterEnd)
	}

	if !in.started {
		return in.start(tok)
	}

	switch tok.Type {
	case core.TokenGroupStart:
		in.flushPending()
		in.skip = 0
		in.stack = append(in.stack, in.top())
	case core.TokenGroupEnd:
		in.endGroup()
	case core.TokenControlWord:
		in.controlWord(tok)
	case core.TokenControlSymbol:
		in.controlSymbol(tok)
	case core.TokenHex:
		in.hex(tok.Byte)
	case core.TokenText:
		in.text(tok.Value)
	}
	return nil
}

// Close finishes the document. It must be called once the token stream is
// exhausted.
func (in *Interpreter) Close() error {
	if in.closed {
		return nil
	}
	in.closed = true

	if !in.started {
		return &SemanticError{Err: ErrNotRTF}
	}
	if !in.ended {
		return &SemanticError{Err: ErrUnterminated, Pos: in.lastPos}
	}
	return nil
}

// start checks the {\rtf prologue. The opening brace is recorded as the
// root group; the \rtf word must follow it.
func (in *Interpreter) start(tok core.Token) error {
	switch {
	case len(in.stack) == 0 && tok.Type == core.TokenText && strings.TrimSpace(tok.Value) == "":
		return nil
	case len(in.stack) == 0 && tok.Type == core.TokenGroupStart:
		in.stack = append(in.stack, groupState{
			uc:    1,
			style: model.TextStyle{Font: in.doc.DefaultFont},
		})
		return nil
	case len(in.stack) == 1 && tok.Type == core.TokenControlWord && tok.Value == "rtf":
		in.started = true
		return nil
	default:
		return in.fail(tok, ErrNotRTF)
	}
}

func (in *Interpreter) fail(tok core.Token, err error) error {
	return &SemanticError{Token: tok.String(), Pos: tok.Pos, Err: err}
}

func (in *Interpreter) top() groupState {
	return in.stack[len(in.stack)-1]
}

func (in *Interpreter) cur() *groupState {
	return &in.stack[len(in.stack)-1]
}

func (in *Interpreter) endGroup() {
	in.flushPending()

	if in.top().dest == destFontTable {
		parentDest := destBody
		if len(in.stack) > 1 {
			parentDest = in.stack[len(in.stack)-2].dest
		}
		if parentDest != destFontTable {
			in.finishFont()
		}
	}

	in.stack = in.stack[:len(in.stack)-1]
	in.skip = 0
	if len(in.stack) == 0 {
		in.ended = true
	}
}

func (in *Interpreter) hex(b byte) {
	if in.cur().dest == destSkip {
		return
	}
	if in.skip > 0 {
		in.skip--
		return
	}
	if in.cur().dest == destFontTable {
		in.font.name = append(in.font.name, b)
		return
	}
	in.pending = append(in.pending, b)
}

func (in *Interpreter) text(s string) {
	switch in.cur().dest {
	case destSkip:
		return
	case destFontTable:
		in.fontText(s)
		return
	case destColorTable:
		in.colorText(s)
		return
	}

	if in.skip > 0 {
		n := in.skip
		if n > len(s) {
			n = len(s)
		}
		s = s[n:]
		in.skip -= n
	}

	// A DBCS lead byte may be followed by a literal ASCII trail byte.
	if len(s) > 0 && in.needsTrail() {
		in.pending = append(in.pending, s[0])
		s = s[1:]
	}

	in.flushPending()
	in.appendText(s)
}

// needsTrail reports whether pending ends in an unpaired DBCS lead byte.
func (in *Interpreter) needsTrail() bool {
	cp := in.codepage()
	for i := 0; i < len(in.pending); {
		if !charset.IsLeadByte(cp, in.pending[i]) {
			i++
			continue
		}
		if i+1 == len(in.pending) {
			return true
		}
		i += 2
	}
	return false
}

// flushPending decodes buffered \'hh bytes into the open span.
func (in *Interpreter) flushPending() {
	if len(in.pending) == 0 {
		return
	}
	raw := in.pending
	in.pending = nil
	s, err := charset.Decode(in.codepage(), raw)
	if err != nil {
		s = strings.Repeat("\ufffd", len(raw))
	}
	in.appendText(s)
}

// codepage returns the codepage of the active font, falling back to the
// document codepage.
func (in *Interpreter) codepage() int {
	if len(in.stack) > 0 {
		if f, ok := in.doc.Fonts[in.top().style.Font]; ok && f.HasCharset {
			if cp, ok := charset.CodepageForCharset(f.Charset); ok && f.Charset != 0 {
				return cp
			}
		}
	}
	return in.doc.Codepage
}

// appendText adds s to the open paragraph, extending the last span when
// its style matches.
func (in *Interpreter) appendText(s string) {
	if s == "" {
		return
	}
	if in.highSurr != 0 {
		in.highSurr = 0
		s = "\ufffd" + s
	}
	if in.para == nil {
		in.para = in.doc.AddParagraph(in.top().para)
	}
	style := in.top().style
	if last := in.para.LastSpan(); last != nil && last.Style.Equal(style) {
		last.Value += s
		return
	}
	in.para.AddSpan(s, style)
}

// endParagraph closes the open paragraph, creating an empty one when no
// text was written since the last break.
func (in *Interpreter) endParagraph() {
	in.flushPending()
	if in.para == nil {
		in.doc.AddParagraph(in.top().para)
	}
	in.para = nil
}

// unicode appends the character named by \uN and arms fallback skipping.
func (in *Interpreter) unicode(n int) {
	if n < 0 {
		n += 65536
	}
	r := rune(n)
	in.flushPending()

	switch {
	case utf16.IsSurrogate(r) && r < 0xDC00:
		if in.highSurr != 0 {
			in.highSurr = 0
			in.appendText("\ufffd")
		}
		in.highSurr = r
	case utf16.IsSurrogate(r):
		high := in.highSurr
		in.highSurr = 0
		if high == 0 {
			in.appendText("\ufffd")
		} else {
			in.appendText(string(utf16.DecodeRune(high, r)))
		}
	default:
		in.appendText(string(r))
	}

	in.skip = in.top().uc
}

func (in *Interpreter) fontText(s string) {
	for {
		i := strings.IndexByte(s, ';')
		if i < 0 {
			in.font.name = append(in.font.name, s...)
			return
		}
		in.font.name = append(in.font.name, s[:i]...)
		in.finishFont()
		s = s[i+1:]
	}
}

// finishFont stores the open font table entry.
func (in *Interpreter) finishFont() {
	if !in.font.open {
		return
	}
	f := in.font.font
	cp := in.doc.Codepage
	if c, ok := charset.CodepageForCharset(f.Charset); ok && f.HasCharset {
		cp = c
	}
	if name, err := charset.Decode(cp, in.font.name); err == nil {
		f.Name = strings.TrimSpace(name)
	}
	in.doc.Fonts[in.font.index] = f
	in.font = fontEntry{}
}

func (in *Interpreter) colorText(s string) {
	for _, c := range s {
		if c == ';' {
			in.doc.Colors = append(in.doc.Colors, in.color)
			in.color = model.Color{}
		}
	}
}
