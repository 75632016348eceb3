package flexcore

// ConnectEvent joins an EventSource to an EventSink (component B). If both
// ends are region-aware and belong to different regions, a cross-region
// buffer (component E) is interposed automatically: the sink's handler is
// fed from the buffer's drain, the buffer's fill is fed from the source,
// the producer region's SwitchTick drives the swap, and the consumer
// region's WorkTick drives the drain. Same-region (or region-unaware)
// endpoints are wired directly — delivery is then synchronous and
// allocation-free, per spec.md §5 ordering guarantee 3.
//
// opts can tune the interposed buffer; they are ignored for same-region
// connections, which never allocate a buffer.
func ConnectEvent[T any](src *EventSource[T], sink *EventSink[T], opts ...BufferOption) error {
	if sameRegion(src, sink) {
		src.Bind(sink.handler)
		return nil
	}

	cfg := bufferConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	buf := newCrossRegionBuffer[T](sink.handler, cfg.capacity)
	buf.OnDrop = cfg.onDrop

	src.Bind(buf.enqueue)
	src.Region().SwitchTick.Bind(buf.inSwitch)
	sink.Region().WorkTick.Bind(buf.inSend)
	return nil
}

// BufferOption configures the cross-region buffer ConnectEvent interposes.
type BufferOption func(*bufferConfig)

type bufferConfig struct {
	capacity int
	onDrop   func(error)
}

// WithBufferCapacity bounds the number of events a cross-region buffer may
// hold in its filling slot before further Fire calls are dropped. The
// default, 0, is unbounded.
func WithBufferCapacity(n int) BufferOption {
	return func(c *bufferConfig) { c.capacity = n }
}

// WithDropHandler registers a callback invoked on the producer thread
// whenever a bounded buffer drops an event.
func WithDropHandler(f func(error)) BufferOption {
	return func(c *bufferConfig) { c.onDrop = f }
}

// ConnectState joins a StateSource to a StateSink (component B). It fails
// with ErrStateSinkAlreadyBound if the sink already has an upstream bound.
//
// State connections are pull-based: a consumer region's handler would have
// to synchronously reach across a thread boundary on every Get, which spec.md
// §5 forbids ("no operation inside a handler is permitted to block on
// another region"). ConnectState therefore refuses to cross regions;
// expose continuous values across a region boundary by sampling them into
// an event on a tick instead.
func ConnectState[T any](src *StateSource[T], sink *StateSink[T]) error {
	if !sameRegion(src, sink) {
		return ErrCrossRegionState
	}
	return sink.bind(src.fn)
}

// Compose returns the composition of two unary callables: x ↦ g(f(x)).
// This realizes the "plain callable | plain callable" row of spec.md
// §4.B's connect table; Go's lack of generic methods means the pipeline
// operator (src >> mid >> sink) is expressed as nested Compose/Pipe calls
// rather than a fluent "src.Pipe(mid).Pipe(sink)" chain.
func Compose[T, U, V any](f func(T) U, g func(U) V) func(T) V {
	return func(t T) V { return g(f(t)) }
}

// Pipe returns the composition of a nullary producer and a unary
// transform: () ↦ g(f()). Chaining Pipe left-associatively,
// Pipe(Pipe(giveOne, inc), inc), is equivalent to connect(connect(a,b),c)
// in spec.md §4.B and to its right-associative form Pipe(giveOne,
// Compose(inc, inc)) — both evaluate the same three calls in the same order.
func Pipe[T, U any](f func() T, g func(T) U) func() U {
	return func() U { return g(f()) }
}
