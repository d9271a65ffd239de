package reader

// DefaultTokenBuffer is the capacity of the channel between the tokenizer
// and the interpreter.
const DefaultTokenBuffer = 64

// EventKind identifies a pipeline event.
type EventKind int

const (
	EventTokenizerDone EventKind = iota
	EventInterpreterDone
	EventSettled
)

func (k EventKind) String() string {
	switch k {
	case EventTokenizerDone:
		return "tokenizer-done"
	case EventInterpreterDone:
		return "interpreter-done"
	case EventSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Event describes a stage finishing. Tokens is the number of tokens the
// stage handled; Err is nil on success.
type Event struct {
	Kind   EventKind
	Tokens int
	Err    error
}

// Options holds configuration for a conversion.
type Options struct {
	TokenBuffer     int
	DefaultCodepage int
	Observer        func(Event)
}

// Option configures a conversion.
type Option func(*Options)

// defaultOptions returns the default conversion options.
func defaultOptions() Options {
	return Options{
		TokenBuffer: DefaultTokenBuffer,
	}
}

// WithTokenBuffer sets the token channel capacity. Zero makes every token
// a synchronous hand-off; negative values are ignored.
func WithTokenBuffer(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.TokenBuffer = n
		}
	}
}

// WithDefaultCodepage sets the codepage used for \'hh escapes until the
// document declares its own.
func WithDefaultCodepage(cp int) Option {
	return func(o *Options) {
		o.DefaultCodepage = cp
	}
}

// WithObserver registers fn to receive pipeline events.
func WithObserver(fn func(Event)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

func (o Options) notify(e Event) {
	if o.Observer != nil {
		o.Observer(e)
	}
}
