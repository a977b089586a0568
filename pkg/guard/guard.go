// Package guard helps consuming functions make their iteration requirements explicit.
//
// A function that needs more than one pass over a caller supplied sequence
// can not safely accept any producer:
// a single-pass source would already be exhausted by the time the second pass begins.
// RequireMultipass applies this policy check once, at the boundary of the consuming function,
// before any value is read.
package guard

import (
	"go.llib.dev/seqkit/pkg/errorkit"
	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/port/option"
	"go.llib.dev/seqkit/port/sequence"
)

// ErrNotReusable is returned when a multipass consumer receives a single-pass source under the strict policy.
const ErrNotReusable errorkit.Error = "ErrNotReusable: single-pass source supplied where repeatable passes are required"

// Kind tells whether a sequence source can produce repeatable passes.
type Kind string

const (
	// KindContainer marks a source that yields a fresh independent cursor on every Produce call.
	KindContainer Kind = "container"
	// KindSinglePassIterator marks a source whose Produce hands back the same cursor,
	// exhausting permanently after one traversal.
	KindSinglePassIterator Kind = "single-pass-iterator"
)

// Classify reports whether the given source can produce repeatable passes.
// The decision is based on the source's construction time multipass capability tag,
// mirroring the question "does asking this source for a fresh pass return a new independent cursor, or the same one".
func Classify[V any](src sequence.Producer[V]) Kind {
	if c, ok := src.(sequence.Container[V]); ok && c.Multipass() {
		return KindContainer
	}
	return KindSinglePassIterator
}

// Policy is a recognized strategy for handling single-pass sources in RequireMultipass.
type Policy string

const (
	// PolicyStrict rejects single-pass sources with ErrNotReusable.
	// This is the default, so eager buffering never happens silently.
	PolicyStrict Policy = "strict"
	// PolicyBuffer drains a single-pass source into memory and wraps it as a Container.
	// Memory use is proportional to the sequence length, the caller accepts this trade-off by opting in.
	PolicyBuffer Policy = "buffer"
	// PolicyFactory bypasses classification and begins every fresh pass through a caller supplied factory.
	PolicyFactory Policy = "factory"
)

// RequireMultipass returns a Container for the given source, or explains why it can't.
//
// A source classified as a Container is returned unchanged under every policy.
// What happens to a single-pass source depends on the configured policy:
// under the default strict policy it is rejected with ErrNotReusable,
// while the Buffer option trades memory for the missing multipass capability.
// The Factory option sidesteps classification altogether,
// when the caller itself controls how a fresh pass is constructed.
//
// Beyond the opt-in Buffer policy, no hidden buffering occurs.
func RequireMultipass[V any](src sequence.Producer[V], opts ...Option[V]) (sequence.Container[V], error) {
	c := option.Use(opts)
	if c.Policy == PolicyFactory {
		return seqkit.FromFunc(c.Factory), nil
	}
	if src == nil { // a nil source can't serve even a single pass
		return nil, ErrNotReusable
	}
	if con, ok := src.(sequence.Container[V]); ok && con.Multipass() {
		return con, nil
	}
	switch c.Policy {
	case PolicyBuffer:
		vs, err := seqkit.Collect(src)
		if err != nil {
			return nil, err
		}
		return seqkit.Slice(vs), nil
	default:
		return nil, ErrNotReusable
	}
}

type Config[V any] struct {
	Policy  Policy
	Factory func() sequence.Cursor[V]
}

type Option[V any] = option.Option[Config[V]]

// Strict configures RequireMultipass to reject single-pass sources.
// It is the default policy, the option exists to let callers state the choice explicitly.
func Strict[V any]() Option[V] {
	return option.Func[Config[V]](func(c *Config[V]) {
		c.Policy = PolicyStrict
	})
}

// Buffer configures RequireMultipass to eagerly drain single-pass sources into memory.
func Buffer[V any]() Option[V] {
	return option.Func[Config[V]](func(c *Config[V]) {
		c.Policy = PolicyBuffer
	})
}

// Factory configures RequireMultipass to construct every fresh pass with the given factory,
// regardless of how the source itself classifies.
// Useful when the caller owns the construction of a fresh pass directly,
// like a closure reopening a file for each traversal.
func Factory[V any](factory func() sequence.Cursor[V]) Option[V] {
	return option.Func[Config[V]](func(c *Config[V]) {
		c.Policy = PolicyFactory
		c.Factory = factory
	})
}
