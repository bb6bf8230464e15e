package eventbus

import "testing"

func TestEmitWithoutSubscriberIsNoop(t *testing.T) {
	b := New()
	// Must not panic and must not buffer.
	b.Emit(OrdersUpdated, "dropped")

	var got any
	b.Subscribe(OrdersUpdated, func(payload any) { got = payload })
	if got != nil {
		t.Errorf("subscribe replayed a buffered emission: %v", got)
	}
}

func TestSubscribeReplacesHandler(t *testing.T) {
	b := New()

	var first, second int
	b.Subscribe(StatisticUpdated, func(any) { first++ })
	b.Subscribe(StatisticUpdated, func(any) { second++ })

	b.Emit(StatisticUpdated, nil)

	if first != 0 {
		t.Errorf("replaced handler was invoked %d times", first)
	}
	if second != 1 {
		t.Errorf("current handler invoked %d times, want 1", second)
	}
}

func TestEmitDeliversPayloadSynchronously(t *testing.T) {
	b := New()

	var got any
	b.Subscribe(OrderUpdated, func(payload any) { got = payload })
	b.Emit(OrderUpdated, 42)

	if got != 42 {
		t.Errorf("payload = %v, want 42", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()

	calls := 0
	b.Subscribe(OrderingChanged, func(any) { calls++ })
	b.Unsubscribe(OrderingChanged)
	b.Emit(OrderingChanged, nil)

	if calls != 0 {
		t.Errorf("unsubscribed handler invoked %d times", calls)
	}
}

func TestChannelsAreIndependent(t *testing.T) {
	b := New()

	var orders, stats int
	b.Subscribe(OrdersUpdated, func(any) { orders++ })
	b.Subscribe(StatisticUpdated, func(any) { stats++ })

	b.Emit(OrdersUpdated, nil)
	b.Emit(OrdersUpdated, nil)
	b.Emit(StatisticUpdated, nil)

	if orders != 2 || stats != 1 {
		t.Errorf("orders=%d stats=%d, want 2 and 1", orders, stats)
	}
}
