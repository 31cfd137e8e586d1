package cmdtree

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Source identifies the layer a bound value was resolved from.
type Source int

const (
	SourceDefault Source = iota
	SourceConfig
	SourceEnv
	SourceCLI
	// SourceNone marks a parameter that was not supplied by any layer,
	// such as an absent switch.
	SourceNone
)

func (s Source) String() string {
	switch s {
	case SourceCLI:
		return "cli"
	case SourceEnv:
		return "env"
	case SourceConfig:
		return "config"
	case SourceDefault:
		return "default"
	case SourceNone:
		return "none"
	default:
		return "unknown"
	}
}

// BoundValue is one converted parameter value, tagged with its winning
// source.
type BoundValue struct {
	Value  any
	Source Source
}

// BoundArguments is the ordered mapping of parameter name to converted
// value for one dispatch. It also owns any resources acquired during
// binding, released when the invocation completes.
type BoundArguments struct {
	names  []string
	values map[string]BoundValue

	closers []io.Closer
}

// NewBoundArguments creates an empty, call-scoped bound-argument set.
func NewBoundArguments() *BoundArguments {
	return &BoundArguments{values: make(map[string]BoundValue)}
}

// Put records a converted value for name. Insertion order is preserved.
func (b *BoundArguments) Put(name string, value any, source Source) {
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = BoundValue{Value: value, Source: source}
}

// Names returns parameter names in binding order.
func (b *BoundArguments) Names() []string {
	return b.names
}

// Lookup returns the bound value for name.
func (b *BoundArguments) Lookup(name string) (BoundValue, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Source returns the winning source for name, or SourceNone when the
// parameter was never bound.
func (b *BoundArguments) Source(name string) Source {
	if v, ok := b.values[name]; ok {
		return v.Source
	}
	return SourceNone
}

// Value returns the raw converted value for name, or nil.
func (b *BoundArguments) Value(name string) any {
	return b.values[name].Value
}

// String returns the bound string for name, or "" when absent or of a
// different type.
func (b *BoundArguments) String(name string) string {
	s, _ := b.values[name].Value.(string)
	return s
}

// Bool returns the bound bool for name. Absent switches bind false.
func (b *BoundArguments) Bool(name string) bool {
	v, _ := b.values[name].Value.(bool)
	return v
}

// Int returns the bound int for name, or 0.
func (b *BoundArguments) Int(name string) int {
	v, _ := b.values[name].Value.(int)
	return v
}

// Int64 returns the bound int64 for name, or 0.
func (b *BoundArguments) Int64(name string) int64 {
	v, _ := b.values[name].Value.(int64)
	return v
}

// Uint returns the bound uint for name, or 0.
func (b *BoundArguments) Uint(name string) uint {
	v, _ := b.values[name].Value.(uint)
	return v
}

// Float returns the bound float64 for name, or 0.
func (b *BoundArguments) Float(name string) float64 {
	v, _ := b.values[name].Value.(float64)
	return v
}

// Strings returns the bound string collection for name, or nil.
func (b *BoundArguments) Strings(name string) []string {
	v, _ := b.values[name].Value.([]string)
	return v
}

// Duration returns the bound duration for name, or 0.
func (b *BoundArguments) Duration(name string) time.Duration {
	v, _ := b.values[name].Value.(time.Duration)
	return v
}

// Time returns the bound timestamp for name, or the zero time.
func (b *BoundArguments) Time(name string) time.Time {
	v, _ := b.values[name].Value.(time.Time)
	return v
}

// UUID returns the bound identifier for name, or uuid.Nil.
func (b *BoundArguments) UUID(name string) uuid.UUID {
	v, _ := b.values[name].Value.(uuid.UUID)
	return v
}

// Reader returns the opened input file bound to name, or nil.
func (b *BoundArguments) Reader(name string) io.Reader {
	v, _ := b.values[name].Value.(io.Reader)
	return v
}

// AddCloser registers a resource acquired during binding. Release closes it
// when the invocation completes.
func (b *BoundArguments) AddCloser(c io.Closer) {
	b.closers = append(b.closers, c)
}

// Release closes every resource acquired during binding, in reverse
// acquisition order. It is safe to call more than once.
func (b *BoundArguments) Release() error {
	var first error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	b.closers = nil
	return first
}
