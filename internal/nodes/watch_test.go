package nodes

import (
	"testing"

	"github.com/nyue/flexcore"
)

// TestWatchOnChanged covers spec.md §8 scenario 4: a state-sink observes
// [5,5,5,6,6,7] over six ticks; watch fires on tick 4 (value 6) and tick 6
// (value 7), no others.
func TestWatchOnChanged(t *testing.T) {
	seq := []int{5, 5, 5, 6, 6, 7}
	idx := 0
	src := flexcore.NewStateSource(func() int { return seq[idx] })

	w := NewWatch[int](OnChanged[int]())
	if err := flexcore.ConnectState(src, w.In); err != nil {
		t.Fatalf("connect: %v", err)
	}

	var fired []int
	sink := flexcore.NewEventSink(func(v int) { fired = append(fired, v) })
	if err := flexcore.ConnectEvent(w.Out(), sink); err != nil {
		t.Fatalf("connect: %v", err)
	}

	for ; idx < len(seq); idx++ {
		if err := w.CheckTick(); err != nil {
			t.Fatalf("CheckTick: %v", err)
		}
	}

	if len(fired) != 2 || fired[0] != 6 || fired[1] != 7 {
		t.Fatalf("got %v, want [6 7]", fired)
	}
}

func TestWatchCustomPredicate(t *testing.T) {
	val := 0
	src := flexcore.NewStateSource(func() int { return val })
	w := NewWatch[int](PredicateFunc[int](func(v int) bool { return v > 3 }))
	if err := flexcore.ConnectState(src, w.In); err != nil {
		t.Fatalf("connect: %v", err)
	}

	var fired []int
	sink := flexcore.NewEventSink(func(v int) { fired = append(fired, v) })
	if err := flexcore.ConnectEvent(w.Out(), sink); err != nil {
		t.Fatalf("connect: %v", err)
	}

	for _, val = range []int{1, 2, 5, 0, 4} {
		if err := w.CheckTick(); err != nil {
			t.Fatalf("CheckTick: %v", err)
		}
	}

	if len(fired) != 2 || fired[0] != 5 || fired[1] != 4 {
		t.Fatalf("got %v, want [5 4]", fired)
	}
}
