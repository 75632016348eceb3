// Package clock provides the virtual clock (component G) and a real-clock
// view sharing the same interface, per spec.md §4.G: tests drive regions
// off MasterClock's deterministic views, production regions drive off
// RealClock.
package clock

import (
	"sync"
	"time"
)

// Named tick periods. The original specification leaves fast/medium/slow
// abstract; original_source/src/threading/parallelregion.hpp ties them to
// concrete durations, which flexcore keeps as ordinary time.Duration
// constants so a region can just as easily be built with any other
// duration or with a cron schedule (internal/schedule).
const (
	Fast   time.Duration = 16 * time.Millisecond // ~60 Hz
	Medium time.Duration = 100 * time.Millisecond
	Slow   time.Duration = time.Second
)

// Clock is the interface region controllers schedule against. Both
// MasterClock's views and RealClock implement it, so a Controller (see
// internal/runtime) is oblivious to whether it's driven by a test's virtual
// time or the wall clock.
type Clock interface {
	Now() time.Time
}

// MasterClock is a monotonic, tick-advanced virtual time source. It exists
// for deterministic tests, not for production scheduling; its reading is
// guarded by a mutex so a controller goroutine may poll it while a test
// calls Advance. Unlike the original's process-wide master::advance, each
// MasterClock holds its own time — construct a fresh one per test fixture
// rather than share one across tests.
type MasterClock struct {
	mu     sync.Mutex
	period time.Duration
	now    time.Time
}

// NewMasterClock creates a MasterClock advancing by period on each Advance
// call, starting at the Unix epoch.
func NewMasterClock(period time.Duration) *MasterClock {
	return &MasterClock{
		period: period,
		now:    time.Unix(0, 0).UTC(),
	}
}

// Now returns the current virtual time. Monotonic: it never decreases.
func (m *MasterClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by exactly one period.
func (m *MasterClock) Advance() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(m.period)
}

// Period returns the clock's configured advance step.
func (m *MasterClock) Period() time.Duration {
	return m.period
}

// Steady returns a Clock view of m suitable for scheduling deadlines — the
// virtual-time analogue of a monotonic steady clock.
func (m *MasterClock) Steady() *SteadyView {
	return &SteadyView{m: m}
}

// System returns a Clock view of m with to_time_t/from_time_t conversions —
// the virtual-time analogue of wall-clock time.
func (m *MasterClock) System() *SystemView {
	return &SystemView{m: m}
}

// SteadyView is the steady-clock derived view of a MasterClock.
type SteadyView struct{ m *MasterClock }

// Now returns the underlying MasterClock's current virtual time.
func (s *SteadyView) Now() time.Time { return s.m.Now() }

// SystemView is the system-clock derived view of a MasterClock, adding
// second-granularity interconversion with an integer time_t representation.
type SystemView struct{ m *MasterClock }

// Now returns the underlying MasterClock's current virtual time.
func (s *SystemView) Now() time.Time { return s.m.Now() }

// ToTimeT converts t to an integer count of seconds since the Unix epoch.
func (s *SystemView) ToTimeT(t time.Time) int64 { return t.Unix() }

// FromTimeT converts an integer count of seconds since the Unix epoch back
// to a time.Time. FromTimeT(ToTimeT(t)) == t truncated to whole seconds.
func (s *SystemView) FromTimeT(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

// RealClock is the production Clock: a thin wrapper over time.Now with the
// same interface MasterClock's views present.
type RealClock struct{}

// Now returns the current wall-clock time.
func (RealClock) Now() time.Time { return time.Now() }
