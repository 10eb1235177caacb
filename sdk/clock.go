package sdk

import "context"

// Clock is the host's monotonic slot clock. It is advanced externally; the
// engine only ever reads it.
type Clock interface {
	CurrentSlot(ctx context.Context) (uint64, error)
}
