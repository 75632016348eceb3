package nodes

import (
	"sync"

	"github.com/nyue/flexcore"
)

// SwitchState implements spec.md §4.F's n-ary switch (state variant): a
// mapping from key K to an input state_sink[T], a state_sink[K] named
// Control, and a state_source out whose pull returns
// inPorts[Control.Get()].Get(), panicking with flexcore.ErrUnknownKey if
// the key is absent (and with the Get error if Control or the input is
// unbound).
type SwitchState[K comparable, T any] struct {
	Control *flexcore.StateSink[K]

	mu  sync.Mutex
	in  map[K]*flexcore.StateSink[T]
	out *flexcore.StateSource[T]
}

// NewSwitchState creates a SwitchState with an unbound Control sink.
func NewSwitchState[K comparable, T any]() *SwitchState[K, T] {
	s := &SwitchState[K, T]{
		Control: flexcore.NewStateSink[K](),
		in:      make(map[K]*flexcore.StateSink[T]),
	}
	s.out = flexcore.NewStateSource(s.get)
	return s
}

// In lazily creates and returns the input state_sink for key k. Connect an
// upstream state_source to it with flexcore.ConnectState.
func (s *SwitchState[K, T]) In(k K) *flexcore.StateSink[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.in[k]; ok {
		return p
	}
	p := flexcore.NewStateSink[T]()
	s.in[k] = p
	return p
}

// Out exposes the switch's output as a state_source.
func (s *SwitchState[K, T]) Out() *flexcore.StateSource[T] { return s.out }

func (s *SwitchState[K, T]) get() T {
	k, err := s.Control.Get()
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	p, ok := s.in[k]
	s.mu.Unlock()
	if !ok {
		panic(flexcore.ErrUnknownKey)
	}
	v, err := p.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// SwitchEvent implements spec.md §4.F's n-ary switch (event variant): In(k)
// lazily creates an event_sink that forwards a received value to Out iff
// k equals Control.Get(), dropping it silently otherwise. At most one
// input is forwarded per control value.
type SwitchEvent[K comparable, T any] struct {
	Control *flexcore.StateSink[K]

	mu  sync.Mutex
	in  map[K]*flexcore.EventSink[T]
	out *flexcore.EventSource[T]
}

// NewSwitchEvent creates a SwitchEvent with an unbound Control sink.
func NewSwitchEvent[K comparable, T any]() *SwitchEvent[K, T] {
	return &SwitchEvent[K, T]{
		Control: flexcore.NewStateSink[K](),
		in:      make(map[K]*flexcore.EventSink[T]),
		out:     flexcore.NewEventSource[T](),
	}
}

// Out exposes the switch's forwarded events.
func (s *SwitchEvent[K, T]) Out() *flexcore.EventSource[T] { return s.out }

// In lazily creates and returns the event_sink for key k. Connect an
// upstream event_source to it with flexcore.ConnectEvent.
func (s *SwitchEvent[K, T]) In(k K) *flexcore.EventSink[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sink, ok := s.in[k]; ok {
		return sink
	}
	sink := flexcore.NewEventSink(func(v T) {
		ctl, err := s.Control.Get()
		if err == nil && ctl == k {
			s.out.Fire(v)
		}
	})
	s.in[k] = sink
	return sink
}
