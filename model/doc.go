// Package model provides the document tree produced by RTF conversion.
//
// A [Document] holds an ordered list of [Paragraph] values, each of which
// holds an ordered list of [Span] values. A span is a run of text with a
// single character style:
//
//	doc := model.NewDocument()
//	p := doc.AddParagraph(model.ParagraphStyle{})
//	p.AddSpan("Hello", model.TextStyle{Bold: true})
//
// Documents are built by the interp package while a conversion is in
// flight. Once the reader package hands a Document to the caller it is
// complete and is never mutated again by the library, so it can be read
// from any goroutine without locking.
//
// # Tables
//
// Font and color tables declared in the RTF header are kept on the
// document ([Document.Fonts], [Document.Colors]) and referenced by index
// from [TextStyle].
package model
