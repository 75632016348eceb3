// Package runtime implements the region & tick controller (component C):
// a per-region goroutine firing SwitchTick then WorkTick every cycle. This
// mirrors the originating project's realtime.RealtimeRuntime tick loop —
// a ticker-driven goroutine with a cancellable context and a done channel —
// generalized from "one statechart tick" to "one region's two-phase cycle."
package runtime

import (
	"fmt"
	"time"

	"github.com/voodooEntity/archivist"

	"github.com/nyue/flexcore"
	"github.com/nyue/flexcore/clock"
)

// Controller drives one Region's cycle: sleep_until(deadline); switch_tick;
// work_tick. Exactly one Controller should ever be Start'd per Region —
// firing two controllers against the same Region would violate spec.md
// §5's "within a region, computation is strictly single-threaded."
type Controller struct {
	region  *flexcore.Region
	period  time.Duration
	clk     clock.Clock
	nextFn  func(time.Time) time.Time
	log     *archivist.Archivist
	overrun time.Duration

	stopCh chan struct{}
	doneCh chan struct{}

	tickNum uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the clock used to compute deadlines; defaults to
// clock.RealClock{}. Pass a *clock.MasterClock's view in tests that drive
// the controller with Step instead of Start.
func WithClock(c clock.Clock) Option {
	return func(ctl *Controller) { ctl.clk = c }
}

// WithLogger attaches a structured logger used for RegionTickOverrun
// warnings (spec.md §7). Left unset, overruns are not reported anywhere.
func WithLogger(log *archivist.Archivist) Option {
	return func(ctl *Controller) { ctl.log = log }
}

// WithOverrunThreshold sets the cycle duration above which a cycle is
// logged as a RegionTickOverrun. Zero (the default) disables the check.
func WithOverrunThreshold(d time.Duration) Option {
	return func(ctl *Controller) { ctl.overrun = d }
}

// WithDeadlineFunc overrides how the next deadline is computed from the
// current clock reading, in place of now.Add(period). internal/schedule
// uses this to drive a cron-scheduled region.
func WithDeadlineFunc(f func(time.Time) time.Time) Option {
	return func(ctl *Controller) { ctl.nextFn = f }
}

// NewController creates a Controller for region, cycling every period
// unless overridden by WithDeadlineFunc.
func NewController(region *flexcore.Region, period time.Duration, opts ...Option) *Controller {
	ctl := &Controller{
		region: region,
		period: period,
		clk:    clock.RealClock{},
	}
	for _, opt := range opts {
		opt(ctl)
	}
	return ctl
}

// TickCount returns the number of completed work_tick cycles.
func (ctl *Controller) TickCount() uint64 {
	return ctl.tickNum
}

// Start launches the region's goroutine. Not safe to call twice without an
// intervening Stop.
func (ctl *Controller) Start() {
	ctl.stopCh = make(chan struct{})
	ctl.doneCh = make(chan struct{})
	go ctl.loop()
}

// Stop signals the region loop to exit and waits for the in-flight cycle,
// if any, to complete. Shutdown is cooperative per spec.md §5: Stop never
// interrupts a cycle mid-tick, and never leaves a cross-region buffer
// mid-swap (the swap itself is a single atomic store).
func (ctl *Controller) Stop() {
	close(ctl.stopCh)
	<-ctl.doneCh
}

func (ctl *Controller) loop() {
	defer close(ctl.doneCh)
	deadline := ctl.nextDeadline()
	for {
		select {
		case <-ctl.stopCh:
			return
		default:
		}

		if !ctl.sleepUntil(deadline) {
			return
		}

		select {
		case <-ctl.stopCh:
			return
		default:
		}

		// The next deadline is measured from this cycle's start, so a cycle
		// that overruns its period is followed immediately by the next one;
		// only one deadline is pending at a time, so there is no catch-up burst.
		deadline = ctl.nextDeadline()
		ctl.Step()
	}
}

// Step fires one complete cycle — SwitchTick then WorkTick, per spec.md
// §4.C's ordering guarantee — and records overrun if the cycle exceeded its
// configured threshold. Exposed so tests can drive a region deterministically
// off a virtual clock rather than waiting on Start's real-time loop.
func (ctl *Controller) Step() {
	start := time.Now()
	ctl.region.SwitchTick.Fire(struct{}{})
	ctl.region.WorkTick.Fire(struct{}{})
	ctl.tickNum++

	if ctl.overrun > 0 && ctl.log != nil {
		if elapsed := time.Since(start); elapsed > ctl.overrun {
			ctl.log.Warning(fmt.Sprintf(
				"region %s: cycle %d took %v, over the %v overrun threshold",
				ctl.region.ID, ctl.tickNum, elapsed, ctl.overrun))
		}
	}
}

func (ctl *Controller) nextDeadline() time.Time {
	now := ctl.clk.Now()
	if ctl.nextFn != nil {
		return ctl.nextFn(now)
	}
	return now.Add(ctl.period)
}

// sleepUntil blocks until deadline or ctl.stopCh closes, returning false in
// the latter case. Against clock.RealClock it sleeps for real; against any
// other Clock (a virtual clock under test) it polls at a fine grain, since
// nothing else can wake it when an external goroutine calls Advance —
// production code should always use the default RealClock.
func (ctl *Controller) sleepUntil(deadline time.Time) bool {
	if _, real := ctl.clk.(clock.RealClock); real {
		d := time.Until(deadline)
		if d <= 0 {
			return true
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return true
		case <-ctl.stopCh:
			return false
		}
	}

	const pollInterval = 200 * time.Microsecond
	for ctl.clk.Now().Before(deadline) {
		select {
		case <-ctl.stopCh:
			return false
		case <-time.After(pollInterval):
		}
	}
	return true
}
