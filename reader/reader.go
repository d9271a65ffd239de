package reader

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/rtftext/core"
	"github.com/tsawler/rtftext/internal/filters"
	"github.com/tsawler/rtftext/interp"
	"github.com/tsawler/rtftext/model"
)

// Parse converts raw RTF bytes into a document. Bytes above 0x7F are
// escaped first, so input of any encoding is accepted.
func Parse(ctx context.Context, data []byte, opts ...Option) (*model.Document, error) {
	return Convert(ctx, filters.EscapeHighBytes(data), opts...)
}

// Convert converts escaped RTF text into a document. On failure the
// partially built document is discarded and the error of the stage that
// failed first is returned.
func Convert(ctx context.Context, text string, opts ...Option) (*model.Document, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	doc := model.NewDocument()
	lexer := core.NewLexer(strings.NewReader(text))
	in := interp.New(doc, interp.WithDefaultCodepage(o.DefaultCodepage))
	tokens := make(chan core.Token, o.TokenBuffer)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := tokenize(gctx, lexer, tokens)
		o.notify(Event{Kind: EventTokenizerDone, Tokens: n, Err: err})
		return err
	})
	g.Go(func() error {
		n, err := interpret(gctx, in, tokens)
		o.notify(Event{Kind: EventInterpreterDone, Tokens: n, Err: err})
		return err
	})

	err := g.Wait()
	o.notify(Event{Kind: EventSettled, Err: err})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// tokenize feeds tokens to out until EOF. The channel is closed only when
// the whole input was tokenized, so a consumer never mistakes a failed
// stream for a finished one.
func tokenize(ctx context.Context, lexer *core.Lexer, out chan<- core.Token) (int, error) {
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		tok, err := lexer.NextToken()
		if err != nil {
			return n, err
		}
		if tok.Type == core.TokenEOF {
			close(out)
			return n, nil
		}

		select {
		case out <- tok:
			n++
		case <-ctx.Done():
			return n, ctx.Err()
		}
	}
}

// interpret applies tokens in arrival order and closes the interpreter
// once the channel is drained.
func interpret(ctx context.Context, in *interp.Interpreter, tokens <-chan core.Token) (int, error) {
	n := 0
	for {
		select {
		case tok, ok := <-tokens:
			if !ok {
				return n, in.Close()
			}
			if err := in.Write(tok); err != nil {
				return n, err
			}
			n++
		case <-ctx.Done():
			return n, ctx.Err()
		}
	}
}
