package sketch

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock is a Lamport clock used to order operations across sites.
type Clock struct {
	counter uint64
}

// Tick advances the clock for a locally produced operation.
func (c *Clock) Tick() uint64 {
	return atomic.AddUint64(&c.counter, 1)
}

// Witness folds a timestamp seen on a remote operation into the clock,
// so later local ticks are ordered after everything already observed.
func (c *Clock) Witness(t uint64) {
	for {
		cur := atomic.LoadUint64(&c.counter)
		if t <= cur {
			return
		}
		if atomic.CompareAndSwapUint64(&c.counter, cur, t) {
			return
		}
	}
}

// Now returns the current clock value without advancing it.
func (c *Clock) Now() uint64 {
	return atomic.LoadUint64(&c.counter)
}

// NewSiteID returns a unique identifier for this session, used as the
// owner of locally drawn strokes.
func NewSiteID() string {
	return uuid.NewString()
}
