// Package nodes implements the generic composite nodes (component F):
// Transform, the two n-ary switch flavors, and Watch/OnChanged, per
// spec.md §4.F. Transform is parameterised over an Operator and Watch over
// a Predicate rather than a bare function, the way the originating
// project's ActionRunner decouples a state machine from how an action
// actually runs — internal/script plugs a goja-scripted Operator (via
// AsNodeOperator) and Predicate in behind the same interfaces.
package nodes

// Operator evaluates a binary combination of an input value and a
// parameter value, producing a result. Transform calls it once per
// input with the parameter pulled fresh from its state_sink.
type Operator[T, P, R any] interface {
	Apply(t T, param P) R
}

// OperatorFunc adapts a plain function to Operator, the common case that
// needs no scripting.
type OperatorFunc[T, P, R any] func(t T, param P) R

// Apply calls f.
func (f OperatorFunc[T, P, R]) Apply(t T, param P) R { return f(t, param) }

// Predicate evaluates a single value to a boolean, the Watch node's
// parameterisation.
type Predicate[T any] interface {
	Test(v T) bool
}

// PredicateFunc adapts a plain function to Predicate.
type PredicateFunc[T any] func(v T) bool

// Test calls f.
func (f PredicateFunc[T]) Test(v T) bool { return f(v) }

// onChanged is the preset predicate described in spec.md §4.F: fires when
// the current value differs from the previously observed one, and never
// fires on the first observation (there is nothing to differ from yet).
// This resolves spec.md §9's own flagged ambiguity about inverted
// predicate polarity in the source watch_node: Watch fires when the
// predicate returns true, and onChanged returns true exactly on a change.
type onChanged[T comparable] struct {
	has  bool
	prev T
}

// OnChanged returns a fresh Predicate[T] implementing the "changed since
// last observation" contract. Each Watch node needs its own instance —
// the predicate carries state between evaluations.
func OnChanged[T comparable]() Predicate[T] {
	return &onChanged[T]{}
}

func (o *onChanged[T]) Test(v T) bool {
	if !o.has {
		o.has = true
		o.prev = v
		return false
	}
	changed := v != o.prev
	o.prev = v
	return changed
}

var _ Operator[int, int, int] = OperatorFunc[int, int, int](nil)
var _ Predicate[int] = PredicateFunc[int](nil)
