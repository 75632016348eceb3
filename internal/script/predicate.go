package script

import (
	"fmt"
	"time"

	"github.com/nyue/flexcore/internal/nodes"
)

// Predicate evaluates a JS function expression of one argument against
// each value, for use as a Watch node's predicate (internal/nodes.Watch).
type Predicate[T any] struct {
	inner *Operator[T, struct{}, bool]
}

// NewPredicate compiles src, a JS function expression of one argument
// returning a boolean, into a Predicate.
func NewPredicate[T any](src string, timeout time.Duration) (*Predicate[T], error) {
	wrapped := fmt.Sprintf("function(t, _param) { var fn = (%s); return fn(t); }", src)
	op, err := NewOperator[T, struct{}, bool](wrapped, timeout)
	if err != nil {
		return nil, err
	}
	return &Predicate[T]{inner: op}, nil
}

// Test evaluates the predicate against v, panicking on a script failure
// the same way nodeOperator does — a malformed or timed-out predicate is
// a wiring error, not a value Watch's contract can carry.
func (p *Predicate[T]) Test(v T) bool {
	ok, err := p.inner.Apply(v, struct{}{})
	if err != nil {
		panic(err)
	}
	return ok
}

var _ nodes.Predicate[int] = (*Predicate[int])(nil)
