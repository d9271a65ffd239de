// Package reader converts RTF bytes into a model.Document.
//
// This package wires the lower-level packages into one conversion:
// internal/filters escapes the raw bytes, core tokenizes the escaped text,
// and interp builds the document. Tokenizing and interpreting run as two
// goroutines linked by a channel, so the token stream is never held in
// memory as a whole.
//
// # Converting
//
// Use [Parse] to convert a byte buffer:
//
//	doc, err := reader.Parse(ctx, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// [Convert] does the same for text that is already escaped.
//
// # Errors
//
// The first error raised by either stage ends the conversion and is
// returned unchanged; use errors.As with *core.SyntaxError or
// *interp.SemanticError to tell them apart. A document is only returned
// when every token was interpreted and the root group was closed.
//
// # Background Conversion
//
// [Start] runs a conversion in the background and returns a [Pending]
// handle that settles exactly once:
//
//	p := reader.Start(ctx, data)
//	// ...
//	doc, err := p.Result()
//
// # Observing
//
// [WithObserver] reports when each stage finishes and when the conversion
// settles. The callback may be invoked from more than one goroutine.
package reader
