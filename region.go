package flexcore

// Region is a scheduling domain: an identity shared (not owned) by every
// port that belongs to it, plus the two event-sources a region-local tick
// controller fires every cycle. Region itself does not run anything — see
// internal/runtime.Controller for the goroutine that fires WorkTick and
// SwitchTick — it is only the shared identity ports reference.
//
// Go's garbage collector reclaims region/node/port cycles on its own, so
// unlike the originating C++ design there is no need for a non-owning
// back-reference discipline: ports simply hold a plain *Region.
type Region struct {
	// ID identifies the region. Two region-aware ports are same-region iff
	// their Region.ID values are equal.
	ID string

	// WorkTick fires once per cycle to drive computation in this region.
	WorkTick *EventSource[struct{}]

	// SwitchTick fires once per cycle, before WorkTick, to command any
	// cross-region buffer this region produces into to swap.
	SwitchTick *EventSource[struct{}]
}

// NewRegion creates a Region with fresh, unbound tick event-sources. The
// region's tick controller (internal/runtime.Controller) is responsible for
// firing SwitchTick and then WorkTick every cycle.
func NewRegion(id string) *Region {
	return &Region{
		ID:         id,
		WorkTick:   NewEventSource[struct{}](),
		SwitchTick: NewEventSource[struct{}](),
	}
}

// RegionAware is implemented by every port kind. A port not yet assigned to
// a region returns a nil Region.
type RegionAware interface {
	Region() *Region
}

// regionRef is the region-aware port mixin (component D): a plain pointer
// to the port's region, embedded into each port type.
type regionRef struct {
	region *Region
}

// Region returns the port's region, or nil if it has not been assigned one.
func (r *regionRef) Region() *Region {
	return r.region
}

// SetRegion assigns the port to a region. Called once, at node-construction
// time, before any Connect* call involving the port.
func (r *regionRef) SetRegion(reg *Region) {
	r.region = reg
}

// sameRegion reports whether two region-aware endpoints belong to the same
// region. Two endpoints with no region assigned are treated as same-region
// (i.e. no buffer is interposed) since there is nothing to isolate.
func sameRegion(a, b RegionAware) bool {
	ra, rb := a.Region(), b.Region()
	if ra == nil || rb == nil {
		return true
	}
	return ra.ID == rb.ID
}
