// Package interp turns RTF tokens into a model.Document.
//
// An [Interpreter] is bound to one document and consumes tokens in the
// order the lexer produced them:
//
//	doc := model.NewDocument()
//	in := interp.New(doc)
//	for _, tok := range tokens {
//	    if err := in.Write(tok); err != nil {
//	        return err
//	    }
//	}
//	if err := in.Close(); err != nil {
//	    return err
//	}
//
// Only a practical subset of RTF is interpreted: the font and color
// tables, codepage selection, character formatting (bold, italic,
// underline, strike, super/subscript, font, size, colors), paragraph
// alignment and indents, Unicode escapes and the common special
// characters. Destinations that carry no body text (stylesheets, document
// info, pictures, headers and footers, and anything marked with \*) are
// skipped. Unknown control words are ignored.
//
// Errors are reported as a [SemanticError] wrapping one of the Err values.
package interp
