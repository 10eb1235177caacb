// Package clock provides slot clocks that are driven by the host rather than
// by a validator.
package clock

import (
	"context"
	"sync/atomic"

	"github.com/smartcontractkit/timelock/internal/utils/safecast"
)

// Manual is an in-memory slot clock advanced explicitly by its owner.
// The zero value starts at slot 0 and is ready to use.
type Manual struct {
	slot atomic.Uint64
}

// NewManual returns a Manual clock starting at slot.
func NewManual(slot uint64) *Manual {
	c := &Manual{}
	c.slot.Store(slot)

	return c
}

func (c *Manual) CurrentSlot(_ context.Context) (uint64, error) {
	return c.slot.Load(), nil
}

// Set moves the clock to slot. Moving backwards is ignored so the clock stays
// monotonic.
func (c *Manual) Set(slot uint64) {
	for {
		cur := c.slot.Load()
		if slot <= cur {
			return
		}
		if c.slot.CompareAndSwap(cur, slot) {
			return
		}
	}
}

// Advance moves the clock forward by n slots and returns the new slot.
func (c *Manual) Advance(n uint64) uint64 {
	for {
		cur := c.slot.Load()
		next := safecast.SaturatingAdd(cur, n)
		if c.slot.CompareAndSwap(cur, next) {
			return next
		}
	}
}
