package core

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tsawler/rtftext/internal/filters"
)

// TokenType represents the type of token
type TokenType int

const (
	TokenEOF           TokenType = iota
	TokenGroupStart              // {
	TokenGroupEnd                // }
	TokenControlWord             // \par, \fs24, \u-3913
	TokenControlSymbol           // \~, \*, \\
	TokenHex                     // \'e9
	TokenText                    // Hello
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenGroupStart:
		return "GroupStart"
	case TokenGroupEnd:
		return "GroupEnd"
	case TokenControlWord:
		return "ControlWord"
	case TokenControlSymbol:
		return "ControlSymbol"
	case TokenHex:
		return "Hex"
	case TokenText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token
type Token struct {
	Type TokenType
	// Value is the control word name, the symbol character or the text run.
	Value    string
	Param    int
	HasParam bool
	// Byte is the decoded value of a TokenHex escape.
	Byte byte
	Pos  int64 // Position in stream
}

func (t Token) String() string {
	switch t.Type {
	case TokenControlWord:
		if t.HasParam {
			return fmt.Sprintf(`\%s%d`, t.Value, t.Param)
		}
		return `\` + t.Value
	case TokenControlSymbol:
		return `\` + t.Value
	case TokenHex:
		return fmt.Sprintf(`\'%02x`, t.Byte)
	case TokenGroupStart:
		return "{"
	case TokenGroupEnd:
		return "}"
	case TokenText:
		return strconv.Quote(t.Value)
	default:
		return t.Type.String()
	}
}

// Lexical errors. They reach callers wrapped in a *SyntaxError.
var (
	ErrUnbalancedGroup = errors.New("unbalanced group")
	ErrBadHexEscape    = errors.New(`malformed \' escape`)
	ErrParamRange      = errors.New("control word parameter out of range")
	ErrTrailingEscape  = errors.New("backslash at end of input")
	ErrWordTooLong     = errors.New("control word too long")
)

// maxWordLen is the longest control word name accepted.
const maxWordLen = 32

// SyntaxError reports malformed input at a byte offset.
type SyntaxError struct {
	Pos  int64
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d (offset %d): %v", e.Line, e.Pos, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Lexer performs lexical analysis of RTF content
type Lexer struct {
	reader *bufio.Reader
	pos    int64
	line   int
	col    int
	depth  int
}

// NewLexer creates a new lexer
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
		pos:    0,
		line:   1,
		col:    0,
	}
}

// Depth returns the number of groups currently open.
func (l *Lexer) Depth() int {
	return l.depth
}

// NextToken returns the next token from the input. At end of input it
// returns a TokenEOF token, or an ErrUnbalancedGroup error if groups are
// still open.
func (l *Lexer) NextToken() (Token, error) {
	for {
		b, err := l.peek()
		if err == io.EOF {
			if l.depth > 0 {
				return Token{}, l.errorf(ErrUnbalancedGroup, "%d group(s) left open", l.depth)
			}
			return Token{Type: TokenEOF, Pos: l.pos}, nil
		}
		if err != nil {
			return Token{}, err
		}

		switch b {
		case '\r', '\n':
			// Line breaks in RTF source carry no meaning.
			l.readByte()
			continue
		case '{':
			l.readByte()
			l.depth++
			return Token{Type: TokenGroupStart, Value: "{", Pos: l.pos - 1}, nil
		case '}':
			if l.depth == 0 {
				return Token{}, l.errorf(ErrUnbalancedGroup, "unexpected '}'")
			}
			l.readByte()
			l.depth--
			return Token{Type: TokenGroupEnd, Value: "}", Pos: l.pos - 1}, nil
		case '\\':
			return l.readControl()
		default:
			return l.readText()
		}
	}
}

// readByte reads a single byte and advances position
func (l *Lexer) readByte() (byte, error) {
	b, err := l.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	l.pos++
	l.col++
	if b == '\n' {
		l.line++
		l.col = 0
	}
	return b, nil
}

// peek looks at the next byte without consuming it
func (l *Lexer) peek() (byte, error) {
	bytes, err := l.reader.Peek(1)
	if err != nil {
		return 0, err
	}
	return bytes[0], nil
}

// peekN looks at the next n bytes without consuming them
func (l *Lexer) peekN(n int) ([]byte, error) {
	return l.reader.Peek(n)
}

// readControl reads whatever follows a backslash.
func (l *Lexer) readControl() (Token, error) {
	start := l.pos
	l.readByte() // the backslash

	b, err := l.readByte()
	if err == io.EOF {
		return Token{}, l.errorf(ErrTrailingEscape, "")
	}
	if err != nil {
		return Token{}, err
	}

	switch {
	case isAlpha(b):
		return l.readControlWord(start, b)
	case b == '\'':
		return l.readHexEscape(start)
	case b == '\r' || b == '\n':
		// An escaped line break is a paragraph mark.
		if next, err := l.peek(); err == nil && (next == '\r' || next == '\n') && next != b {
			l.readByte()
		}
		return Token{Type: TokenControlWord, Value: "par", Pos: start}, nil
	default:
		return Token{Type: TokenControlSymbol, Value: string(b), Pos: start}, nil
	}
}

// readControlWord reads \letters[-digits][space]; first is the first letter.
func (l *Lexer) readControlWord(start int64, first byte) (Token, error) {
	var name bytes.Buffer
	name.WriteByte(first)

	for {
		b, err := l.peek()
		if err != nil || !isAlpha(b) {
			break
		}
		if name.Len() >= maxWordLen {
			return Token{}, l.errorf(ErrWordTooLong, "%q...", name.String())
		}
		l.readByte()
		name.WriteByte(b)
	}

	tok := Token{Type: TokenControlWord, Value: name.String(), Pos: start}

	var param bytes.Buffer
	if next, err := l.peekN(2); err == nil && next[0] == '-' && isDigit(next[1]) {
		l.readByte()
		param.WriteByte('-')
	}
	for {
		b, err := l.peek()
		if err != nil || !isDigit(b) {
			break
		}
		l.readByte()
		param.WriteByte(b)
	}

	if param.Len() > 0 {
		n, err := strconv.ParseInt(param.String(), 10, 32)
		if err != nil {
			return Token{}, l.errorf(ErrParamRange, `\%s%s`, tok.Value, param.String())
		}
		tok.Param = int(n)
		tok.HasParam = true
	}

	// A single space delimits the word and belongs to it.
	if b, err := l.peek(); err == nil && b == ' ' {
		l.readByte()
	}

	return tok, nil
}

// readHexEscape reads the two digits of a \'hh escape.
func (l *Lexer) readHexEscape(start int64) (Token, error) {
	digits, err := l.peekN(2)
	if err != nil && err != io.EOF {
		return Token{}, err
	}
	if len(digits) < 2 {
		return Token{}, l.errorf(ErrBadHexEscape, "truncated escape")
	}
	v, err := filters.DecodeHexPair(digits[0], digits[1])
	if err != nil {
		return Token{}, l.errorf(ErrBadHexEscape, "%v", err)
	}
	l.readByte()
	l.readByte()
	return Token{Type: TokenHex, Byte: v, Pos: start}, nil
}

// readText reads a literal run up to the next delimiter or line break.
func (l *Lexer) readText() (Token, error) {
	start := l.pos
	var buf bytes.Buffer

	for {
		b, err := l.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if b == '{' || b == '}' || b == '\\' || b == '\r' || b == '\n' {
			break
		}
		l.readByte()
		buf.WriteByte(b)
	}

	return Token{Type: TokenText, Value: buf.String(), Pos: start}, nil
}

func (l *Lexer) errorf(err error, format string, args ...interface{}) error {
	if format != "" {
		err = fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	}
	return &SyntaxError{Pos: l.pos, Line: l.line, Err: err}
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
