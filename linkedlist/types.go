// Package linkedlist declares the Node and List types, sentinel errors
// and functional options used to configure a List.
package linkedlist

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Default rendering tokens used by Print and String.
const (
	DefaultConnector = " -> "
	DefaultSentinel  = "NULL"
)

// Sentinel errors for list operations.
var (
	// ErrInvalidArgument indicates a negative insertion index.
	ErrInvalidArgument = errors.New("linkedlist: invalid index")

	// ErrIndexOutOfRange indicates an insertion index past the end of the chain.
	ErrIndexOutOfRange = errors.New("linkedlist: index out of range")

	// ErrNilNode indicates a nil node was handed to Append or Insert.
	ErrNilNode = errors.New("linkedlist: node is nil")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("linkedlist: invalid option supplied")
)

// Node is a single element of the chain.
//
// The value is fixed at creation. The next link is owned by the list the
// node was added to and is never exposed.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// NewNode returns a detached node carrying v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the payload carried by n.
func (n *Node[T]) Value() T {
	return n.value
}

// List is an ordered, singly-linked chain of nodes.
//
// head is nil for an empty list. size mirrors the number of reachable nodes
// and is kept in step by every mutating operation.
type List[T any] struct {
	head *Node[T]
	size int
	opts Options
}

// Option configures a List at construction time.
// Invalid options are recorded and surfaced by New as ErrOptionViolation.
type Option func(*Options)

// Options holds the rendering, reporting and teardown settings of a List.
type Options struct {
	// Reporter receives a text message for every failed operation.
	Reporter Reporter

	// Output is where Print writes.
	Output io.Writer

	// Connector separates consecutive values when printing.
	Connector string

	// Sentinel terminates the printed chain.
	Sentinel string

	// OnRelease is called once per node during Destroy, in traversal order,
	// with the node's zero-based position and its value.
	OnRelease func(pos int, value any)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - the stderr log reporter
//   - os.Stdout as the print target
//   - " -> " as connector and "NULL" as sentinel
//   - a no-op release hook.
func DefaultOptions() Options {
	return Options{
		Reporter:  DefaultReporter(),
		Output:    os.Stdout,
		Connector: DefaultConnector,
		Sentinel:  DefaultSentinel,
		OnRelease: func(int, any) {},
	}
}

// WithReporter sets the diagnostic sink. A nil reporter is ignored.
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		if r != nil {
			o.Reporter = r
		}
	}
}

// WithOutput sets the writer used by Print. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Output = w
		}
	}
}

// WithConnector sets the token printed between values.
// An empty connector is invalid.
func WithConnector(s string) Option {
	return func(o *Options) {
		if s == "" {
			o.err = fmt.Errorf("%w: connector cannot be empty", ErrOptionViolation)

			return
		}
		o.Connector = s
	}
}

// WithSentinel sets the end-of-chain marker.
// An empty sentinel is invalid.
func WithSentinel(s string) Option {
	return func(o *Options) {
		if s == "" {
			o.err = fmt.Errorf("%w: sentinel cannot be empty", ErrOptionViolation)

			return
		}
		o.Sentinel = s
	}
}

// WithOnRelease registers a teardown hook.
func WithOnRelease(fn func(pos int, value any)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelease = fn
		}
	}
}

// New creates an empty list with the given options applied left to right.
// Returns ErrOptionViolation (wrapped) if any option is invalid.
func New[T any](opts ...Option) (*List[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &List[T]{opts: o}, nil
}

// MustNew is like New but panics on an invalid option.
func MustNew[T any](opts ...Option) *List[T] {
	l, err := New[T](opts...)
	if err != nil {
		panic(err)
	}

	return l
}
