package reader

import (
	"context"
	"sync"

	"github.com/tsawler/rtftext/model"
)

// Pending is the handle of a background conversion. It settles once,
// with either a document or an error.
type Pending struct {
	once sync.Once
	done chan struct{}
	doc  *model.Document
	err  error
}

// Start runs Parse in a new goroutine. The conversion cannot be stopped
// other than through ctx; callers that lose interest may simply drop the
// handle.
func Start(ctx context.Context, data []byte, opts ...Option) *Pending {
	p := newPending()
	go func() {
		p.settle(Parse(ctx, data, opts...))
	}()
	return p
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// settle records the outcome. Only the first call has any effect; it
// reports whether this call settled the handle.
func (p *Pending) settle(doc *model.Document, err error) bool {
	settled := false
	p.once.Do(func() {
		p.doc, p.err = doc, err
		close(p.done)
		settled = true
	})
	return settled
}

// Done returns a channel that is closed when the conversion settles.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Result blocks until the conversion settles.
func (p *Pending) Result() (*model.Document, error) {
	<-p.done
	return p.doc, p.err
}

// Wait is like Result but gives up when ctx is done. Giving up does not
// stop the conversion.
func (p *Pending) Wait(ctx context.Context) (*model.Document, error) {
	select {
	case <-p.done:
		return p.doc, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
