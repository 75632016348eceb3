// Package flexcore is the core of a reactive dataflow framework for building
// concurrent, cycle-driven computation graphs.
//
// Nodes are user-defined types that own ports. A port is one of four
// disciplines — EventSource, EventSink, StateSource, StateSink — and is
// joined to another port with a Connect* function. Nodes are grouped into
// regions, each driven by its own goroutine and periodic tick; a connection
// that crosses a region boundary is automatically buffered so the two
// regions never share mutable state directly. A connection within one
// region is a synchronous, allocation-free call.
//
// This package and flexcore/clock use only the Go standard library, the way
// the originating project keeps its own core stdlib-only and pushes
// third-party dependencies into adapter packages (internal/settings,
// internal/inspect, internal/script, internal/schedule).
package flexcore
