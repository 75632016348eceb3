package flexcore

import "errors"

// Error taxonomy. Setup-time errors (ErrStateSinkAlreadyBound,
// ErrCrossRegionState) are returned by ConnectState and must stop further
// graph construction; runtime errors are raised by the operation that
// discovered them (ErrUnboundSink is returned, ErrUnknownKey is panicked)
// and never cross a region boundary.
var (
	// ErrConnectTypeMismatch names the payload-type-mismatch kind of the
	// taxonomy. No function in this module returns it: Connect* calls are
	// statically typed, so a mismatch is a compile error, and
	// internal/script operators report a type mismatch at Apply time as
	// their own unmarshal error.
	ErrConnectTypeMismatch = errors.New("flexcore: connect type mismatch")

	// ErrStateSinkAlreadyBound is returned by ConnectState when the sink
	// already has an upstream source.
	ErrStateSinkAlreadyBound = errors.New("flexcore: state sink already bound")

	// ErrUnboundSink is returned by StateSink.Get when no source is bound.
	ErrUnboundSink = errors.New("flexcore: state sink has no bound source")

	// ErrUnknownKey is the panic value internal/nodes.SwitchState raises
	// when its output is pulled while Control holds a key that has no
	// registered input. SwitchEvent never raises it: In creates inputs
	// lazily.
	ErrUnknownKey = errors.New("flexcore: unknown key")

	// ErrQueueFull is passed to a cross-region buffer's drop handler when
	// an event is dropped because the filling queue is at its configured
	// capacity.
	ErrQueueFull = errors.New("flexcore: cross-region buffer full")

	// ErrCrossRegionState is returned by ConnectState when source and sink
	// are region-aware and belong to different regions; state pulls cannot
	// cross a region boundary without blocking on another region's thread.
	ErrCrossRegionState = errors.New("flexcore: state connections cannot cross regions")
)
