package nodes

import "github.com/nyue/flexcore"

// Watch implements spec.md §4.F's Watch node: a state_sink[T] In, an
// event_source[T] Out, and a CheckTick callable that reads In.Get(),
// evaluates the predicate, and fires Out with the value iff the
// predicate holds.
type Watch[T any] struct {
	In *flexcore.StateSink[T]

	pred Predicate[T]
	out  *flexcore.EventSource[T]
}

// NewWatch creates a Watch evaluating pred on each CheckTick. Use
// OnChanged[T]() for the preset "differs from previous observation"
// predicate.
func NewWatch[T any](pred Predicate[T]) *Watch[T] {
	return &Watch[T]{
		In:   flexcore.NewStateSink[T](),
		pred: pred,
		out:  flexcore.NewEventSource[T](),
	}
}

// Out exposes the node's conditionally-fired events.
func (w *Watch[T]) Out() *flexcore.EventSource[T] { return w.out }

// CheckTick reads In, evaluates the predicate, and fires Out with the
// value iff the predicate holds. Returns flexcore.ErrUnboundSink from
// In.Get if In was never bound.
func (w *Watch[T]) CheckTick() error {
	v, err := w.In.Get()
	if err != nil {
		return err
	}
	if w.pred.Test(v) {
		w.out.Fire(v)
	}
	return nil
}
