// Package trail is the runtime contract between code generated by graphbind
// and the GraphQL execution engine driving it. Generated bindings depend only
// on the small surface declared here: the lookahead Selection, the per-request
// Executor, and the selection Value tree consumed by the generated decoders.
package trail

import "context"

// ID is the representation of the built-in GraphQL ID scalar.
type ID string

// Selection is the engine-provided record of which fields a client actually
// requested. Child returns the nested selection for a field, or nil when the
// field was not selected.
type Selection interface {
	Child(name string) Selection
}

// Executor carries per-request state into resolver methods. The engine
// constructs one per operation with the root lookahead selection.
type Executor struct {
	ctx context.Context
	sel Selection
}

func NewExecutor(ctx context.Context, sel Selection) *Executor {
	return &Executor{ctx: ctx, sel: sel}
}

// Context returns the request context the executor was built with.
func (e *Executor) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// LookAhead returns the root selection of the current operation.
func (e *Executor) LookAhead() Selection { return e.sel }

// MapSelection is a Selection backed by a plain map. Engines with their own
// lookahead structures adapt them to Selection directly; MapSelection exists
// for tests and simple embedding.
type MapSelection map[string]MapSelection

func (m MapSelection) Child(name string) Selection {
	if c, ok := m[name]; ok {
		return c
	}
	return nil
}

// StreamItem is the element type of fallible subscription streams
// (stream_item_infallible: false).
type StreamItem[T any] struct {
	Value T
	Err   error
}

// EmptyMutation is the mutation root used when the schema declares none.
type EmptyMutation struct{}

// EmptySubscription is the subscription root used when the schema declares none.
type EmptySubscription struct{}

// Ptr returns a pointer to v. Generated default-value expressions use it to
// fill nullable input object fields.
func Ptr[T any](v T) *T { return &v }
