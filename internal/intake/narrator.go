package intake

import (
	"context"
	"sync"
	"time"
)

// Narrator is the cancellable delay primitive behind the simulated
// conversational pacing. Production injects a real delay; tests inject zero,
// which delivers synchronously. Closing the narrator discards every pending
// delivery so nothing lands on a torn-down session.
type Narrator struct {
	delay time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	timers []*time.Timer
}

func NewNarrator(delay time.Duration) *Narrator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Narrator{
		delay:  delay,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Announce schedules fn after the narrator's delay. A zero or negative delay
// runs fn synchronously. fn is dropped, not run, if the narrator is closed
// before the delay elapses.
func (n *Narrator) Announce(fn func()) {
	if n.delay <= 0 {
		if n.ctx.Err() == nil {
			fn()
		}
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.ctx.Err() != nil {
		return
	}

	timer := time.AfterFunc(n.delay, func() {
		if n.ctx.Err() != nil {
			return
		}
		fn()
	})
	n.timers = append(n.timers, timer)
}

// Close cancels all pending deliveries. Safe to call more than once.
func (n *Narrator) Close() {
	n.cancel()

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, timer := range n.timers {
		timer.Stop()
	}
	n.timers = nil
}
