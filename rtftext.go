// Package rtftext provides a fluent API for extracting text and styled
// content from RTF documents.
//
// Basic usage:
//
//	text, err := rtftext.Open("document.rtf").Text()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	doc, err := rtftext.FromBytes(data).
//	    Codepage(1251).
//	    Context(ctx).
//	    Document()
//
// For advanced use cases, the lower-level reader package is also available.
package rtftext

import (
	"context"
)

// Open returns an Extractor for the RTF file at filename. The file is read
// when a terminal operation such as Text() is called.
//
// Example:
//
//	text, err := rtftext.Open("document.rtf").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		ctx:      context.Background(),
		options:  defaultOptions(),
	}
}

// FromBytes returns an Extractor for RTF content already in memory.
//
// Example:
//
//	doc, err := rtftext.FromBytes(data).Document()
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		hasData: true,
		ctx:     context.Background(),
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	text := rtftext.Must(rtftext.Open("document.rtf").Text())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
