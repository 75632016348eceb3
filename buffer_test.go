package flexcore

import (
	"reflect"
	"testing"
)

// TestCrossRegionDelivery covers spec.md §8 scenario 2: a producer region
// fires [1,2,3] in cycle k; the consumer region observes [1,2,3] in cycle
// k+1, and nothing before.
func TestCrossRegionDelivery(t *testing.T) {
	producer := NewRegion("producer")
	consumer := NewRegion("consumer")

	src := NewEventSource[int]()
	src.SetRegion(producer)

	var delivered []int
	sink := NewEventSink(func(v int) { delivered = append(delivered, v) })
	sink.SetRegion(consumer)

	if err := ConnectEvent(src, sink); err != nil {
		t.Fatalf("connect: %v", err)
	}

	// Cycle k: producer fires, then swaps. Consumer's work_tick has not
	// fired yet, so nothing must be observed.
	src.Fire(1)
	src.Fire(2)
	src.Fire(3)
	producer.SwitchTick.Fire(struct{}{})

	if delivered != nil {
		t.Fatalf("observed %v before consumer work_tick, want none", delivered)
	}

	// Cycle k+1: consumer's work_tick drains the swapped batch.
	consumer.WorkTick.Fire(struct{}{})

	if !reflect.DeepEqual(delivered, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", delivered)
	}

	// No duplication on a second drain with nothing new enqueued.
	consumer.WorkTick.Fire(struct{}{})
	if !reflect.DeepEqual(delivered, []int{1, 2, 3}) {
		t.Fatalf("got %v after empty drain, want unchanged [1 2 3]", delivered)
	}
}

// TestCrossRegionNoLossNoDuplication covers spec.md §8's buffer invariant:
// sum(delivered) == sum(fired) over a run with interleaved swaps and
// drains, including fires that happen between a swap and the next drain.
func TestCrossRegionNoLossNoDuplication(t *testing.T) {
	producer := NewRegion("producer")
	consumer := NewRegion("consumer")

	src := NewEventSource[int]()
	src.SetRegion(producer)

	var delivered []int
	sink := NewEventSink(func(v int) { delivered = append(delivered, v) })
	sink.SetRegion(consumer)

	if err := ConnectEvent(src, sink); err != nil {
		t.Fatalf("connect: %v", err)
	}

	src.Fire(1)
	producer.SwitchTick.Fire(struct{}{})
	src.Fire(2) // enqueued after the swap; must not appear in this cycle's drain
	consumer.WorkTick.Fire(struct{}{})

	if !reflect.DeepEqual(delivered, []int{1}) {
		t.Fatalf("got %v, want [1] (2 must not have been drained yet)", delivered)
	}

	producer.SwitchTick.Fire(struct{}{})
	consumer.WorkTick.Fire(struct{}{})

	if !reflect.DeepEqual(delivered, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", delivered)
	}
}

func TestCrossRegionBufferDropsOverCapacity(t *testing.T) {
	producer := NewRegion("producer")
	consumer := NewRegion("consumer")

	src := NewEventSource[int]()
	src.SetRegion(producer)

	var delivered []int
	sink := NewEventSink(func(v int) { delivered = append(delivered, v) })
	sink.SetRegion(consumer)

	var dropErr error
	if err := ConnectEvent(src, sink,
		WithBufferCapacity(2),
		WithDropHandler(func(err error) { dropErr = err }),
	); err != nil {
		t.Fatalf("connect: %v", err)
	}

	src.Fire(1)
	src.Fire(2)
	src.Fire(3) // dropped: capacity is 2

	if dropErr == nil {
		t.Fatal("expected drop handler to be invoked")
	}

	producer.SwitchTick.Fire(struct{}{})
	consumer.WorkTick.Fire(struct{}{})

	if !reflect.DeepEqual(delivered, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", delivered)
	}
}
