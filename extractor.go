package rtftext

import (
	"context"
	"fmt"
	"os"

	"github.com/tsawler/rtftext/model"
	"github.com/tsawler/rtftext/reader"
	"github.com/tsawler/rtftext/text"
)

// Extractor provides a fluent interface for extracting content from RTF.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	data     []byte
	hasData  bool

	ctx context.Context

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		hasData:  e.hasData,
		ctx:      e.ctx,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// Codepage sets the codepage used for escaped bytes until the document
// declares its own, e.g. 1251 for Cyrillic files missing \ansicpg.
func (e *Extractor) Codepage(cp int) *Extractor {
	ext := e.clone()
	if cp <= 0 {
		ext.err = fmt.Errorf("invalid codepage %d", cp)
		return ext
	}
	ext.options.codepage = cp
	return ext
}

// TokenBuffer sets the capacity of the channel between tokenizer and
// interpreter.
func (e *Extractor) TokenBuffer(n int) *Extractor {
	ext := e.clone()
	if n < 0 {
		ext.err = fmt.Errorf("invalid token buffer %d", n)
		return ext
	}
	ext.options.tokenBuffer = n
	return ext
}

// Observe registers a callback for conversion events.
func (e *Extractor) Observe(fn func(reader.Event)) *Extractor {
	ext := e.clone()
	ext.options.observer = fn
	return ext
}

// Context sets the context used by the conversion.
func (e *Extractor) Context(ctx context.Context) *Extractor {
	ext := e.clone()
	if ctx == nil {
		ctx = context.Background()
	}
	ext.ctx = ctx
	return ext
}

// Document converts the source and returns the document tree.
func (e *Extractor) Document() (*model.Document, error) {
	if e.err != nil {
		return nil, e.err
	}

	data, err := e.source()
	if err != nil {
		return nil, err
	}

	doc, err := reader.Parse(e.ctx, data, e.options.readerOptions()...)
	if err != nil {
		if e.filename != "" {
			return nil, fmt.Errorf("failed to parse %s: %w", e.filename, err)
		}
		return nil, err
	}
	return doc, nil
}

// Text converts the source and returns its plain text, one line per
// paragraph.
func (e *Extractor) Text() (string, error) {
	doc, err := e.Document()
	if err != nil {
		return "", err
	}
	return text.Flatten(doc), nil
}

// source returns the raw input bytes.
func (e *Extractor) source() ([]byte, error) {
	if e.hasData {
		return e.data, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open RTF: %w", err)
	}
	return data, nil
}
