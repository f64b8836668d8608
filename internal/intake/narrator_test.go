package intake

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestNarrator_ZeroDelayIsSynchronous(t *testing.T) {
	n := NewNarrator(0)
	defer n.Close()

	fired := false
	n.Announce(func() { fired = true })
	if !fired {
		t.Fatal("expected synchronous delivery at zero delay")
	}
}

func TestNarrator_DeliversAfterDelay(t *testing.T) {
	n := NewNarrator(10 * time.Millisecond)
	defer n.Close()

	var fired atomic.Bool
	n.Announce(func() { fired.Store(true) })

	if fired.Load() {
		t.Fatal("delivery should not happen before the delay")
	}
	time.Sleep(50 * time.Millisecond)
	if !fired.Load() {
		t.Fatal("expected delivery after the delay")
	}
}

func TestNarrator_CloseDropsPending(t *testing.T) {
	n := NewNarrator(20 * time.Millisecond)

	var fired atomic.Bool
	n.Announce(func() { fired.Store(true) })
	n.Close()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Fatal("closed narrator must not deliver")
	}

	// Announce after close is a no-op.
	n.Announce(func() { fired.Store(true) })
	if fired.Load() {
		t.Fatal("announce after close must not deliver")
	}
}
