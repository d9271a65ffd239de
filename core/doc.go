// Package core provides the RTF tokenizer.
//
// The [Lexer] type reads escaped RTF text from an io.Reader and returns one
// [Token] at a time. It understands only the lexical layer of the format:
//
//   - group delimiters { and }
//   - control words such as \par or \fs24, with an optional signed parameter
//   - control symbols such as \~ or \*, including the escapes \\ \{ \}
//   - hex escapes \'hh
//   - literal text runs
//
// Meaning is assigned to tokens by the interp package. The lexer does track
// group depth, so unbalanced braces are reported here as a [SyntaxError]
// wrapping [ErrUnbalancedGroup].
//
// Typical use:
//
//	lx := core.NewLexer(strings.NewReader(text))
//	for {
//	    tok, err := lx.NextToken()
//	    if err != nil {
//	        return err
//	    }
//	    if tok.Type == core.TokenEOF {
//	        break
//	    }
//	    // handle tok
//	}
package core
