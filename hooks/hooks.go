// Package hooks sequences before, after and error lifecycle callbacks
// around a single action invocation.
package hooks

import "context"

// Stage selects when a hook runs relative to the action.
type Stage int

const (
	StageBefore Stage = iota
	StageAfter
	StageOnError
)

func (s Stage) String() string {
	switch s {
	case StageBefore:
		return "before"
	case StageAfter:
		return "after"
	case StageOnError:
		return "onError"
	default:
		return "unknown"
	}
}

// Func is a lifecycle callback. It receives the dispatch's context.Context
// and the shared hook Context for the current invocation.
type Func func(ctx context.Context, hc *Context) error

// Descriptor registers a hook at a stage. Lower Order runs first; equal
// orders keep registration order.
type Descriptor struct {
	Stage Stage
	Order int
	Fn    Func
}

// Context is the shared mutable key-value state threaded through every hook
// of one dispatch. It also carries the cancellation flag set by before
// hooks, the action result seen by after hooks, and the propagating error
// seen by error hooks. A Context is call-scoped and never shared across
// concurrent dispatches.
type Context struct {
	values map[string]any

	cancelled bool
	cancelMsg string

	result    int
	actionErr error
	handled   bool
}

// NewContext creates an empty hook context for one dispatch.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Set stores a value hooks can use to communicate within one dispatch.
func (c *Context) Set(key string, value any) {
	c.values[key] = value
}

// Get returns a value previously stored with Set.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Cancel requests that the action not run. Remaining before hooks and the
// action itself are skipped; the dispatch completes with a cancellation
// outcome carrying msg.
func (c *Context) Cancel(msg string) {
	c.cancelled = true
	c.cancelMsg = msg
}

// Cancelled reports whether a before hook requested cancellation.
func (c *Context) Cancelled() bool {
	return c.cancelled
}

// CancelMessage returns the message passed to Cancel.
func (c *Context) CancelMessage() string {
	return c.cancelMsg
}

// Result returns the action's result. Meaningful in after hooks, and in
// error hooks that mark the error handled.
func (c *Context) Result() int {
	return c.result
}

// SetResult overrides the result an error hook completes the dispatch with
// after marking the error handled.
func (c *Context) SetResult(code int) {
	c.result = code
}

// Err returns the error propagating through the error-hook chain.
func (c *Context) Err() error {
	return c.actionErr
}

// MarkHandled claims the propagating error, stopping it from reaching later
// error hooks or the caller.
func (c *Context) MarkHandled() {
	c.handled = true
}
