package rtftext

import "github.com/tsawler/rtftext/reader"

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	codepage    int // 0 means the reader default
	tokenBuffer int
	observer    func(reader.Event)
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		codepage:    0,
		tokenBuffer: reader.DefaultTokenBuffer,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		codepage:    o.codepage,
		tokenBuffer: o.tokenBuffer,
		observer:    o.observer,
	}
}

// readerOptions translates the options for reader.Parse.
func (o ExtractOptions) readerOptions() []reader.Option {
	opts := []reader.Option{reader.WithTokenBuffer(o.tokenBuffer)}
	if o.codepage > 0 {
		opts = append(opts, reader.WithDefaultCodepage(o.codepage))
	}
	if o.observer != nil {
		opts = append(opts, reader.WithObserver(o.observer))
	}
	return opts
}
