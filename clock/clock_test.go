package clock

import (
	"testing"
	"time"
)

// TestVirtualTimeAdvance covers spec.md §8 scenario 6: advance the clock
// 1000 times at period 10ms; now() - start == 10s.
func TestVirtualTimeAdvance(t *testing.T) {
	c := NewMasterClock(10 * time.Millisecond)
	start := c.Now()

	for i := 0; i < 1000; i++ {
		c.Advance()
	}

	if got := c.Now().Sub(start); got != 10*time.Second {
		t.Fatalf("got %v, want 10s", got)
	}
}

func TestAdvanceExactlyOnePeriod(t *testing.T) {
	c := NewMasterClock(time.Millisecond)
	for n := 1; n <= 5; n++ {
		c.Advance()
		want := time.Duration(n) * time.Millisecond
		if got := c.Now().Sub(time.Unix(0, 0).UTC()); got != want {
			t.Fatalf("after %d advances, got %v, want %v", n, got, want)
		}
	}
}

// TestSystemTimeTRoundTrip covers spec.md §8: from_time_t(to_time_t(t))
// equals t truncated to seconds.
func TestSystemTimeTRoundTrip(t *testing.T) {
	c := NewMasterClock(time.Second)
	sys := c.System()

	for i := 0; i < 5; i++ {
		c.Advance()
	}

	now := c.Now()
	roundTripped := sys.FromTimeT(sys.ToTimeT(now))

	if !roundTripped.Equal(now.Truncate(time.Second)) {
		t.Fatalf("got %v, want %v", roundTripped, now.Truncate(time.Second))
	}
}

func TestSteadyViewTracksMaster(t *testing.T) {
	c := NewMasterClock(time.Millisecond)
	steady := c.Steady()

	c.Advance()
	c.Advance()

	if !steady.Now().Equal(c.Now()) {
		t.Fatalf("steady view diverged from master clock")
	}
}
