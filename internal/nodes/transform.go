package nodes

import "github.com/nyue/flexcore"

// Transform implements spec.md §4.F's Transform node: an arity-1 input
// callable accepting T, a state_sink[P] named Param, and an Operator
// combining the two into R. Each call to In pulls Param exactly once and
// invokes the operator exactly once, per the node's contract.
type Transform[T, P, R any] struct {
	Param *flexcore.StateSink[P]

	op  Operator[T, P, R]
	out *flexcore.EventSource[R]
}

// NewTransform creates a Transform evaluating op against a fresh,
// unbound Param sink. Bind a source to Param with flexcore.ConnectState
// before firing In.
func NewTransform[T, P, R any](op Operator[T, P, R]) *Transform[T, P, R] {
	return &Transform[T, P, R]{
		Param: flexcore.NewStateSink[P](),
		op:    op,
		out:   flexcore.NewEventSource[R](),
	}
}

// Out exposes the node's result as an event_source, so downstream ports
// connect to it the same way they would to any other event producer.
func (t *Transform[T, P, R]) Out() *flexcore.EventSource[R] { return t.out }

// In evaluates the node for one input value, pulling Param once and
// firing Out with the result. Returns flexcore.ErrUnboundSink from
// Param.Get if Param was never bound.
func (t *Transform[T, P, R]) In(v T) error {
	p, err := t.Param.Get()
	if err != nil {
		return err
	}
	t.out.Fire(t.op.Apply(v, p))
	return nil
}
