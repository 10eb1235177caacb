package solana

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"

	"github.com/smartcontractkit/timelock/sdk"
)

var _ sdk.Clock = (*RPCClock)(nil)

// RPCClock reads the current slot from a solana RPC node.
type RPCClock struct {
	client     *rpc.Client
	commitment rpc.CommitmentType
}

// NewRPCClock creates a clock backed by client at confirmed commitment.
func NewRPCClock(client *rpc.Client) *RPCClock {
	return &RPCClock{client: client, commitment: rpc.CommitmentConfirmed}
}

func (c *RPCClock) CurrentSlot(ctx context.Context) (uint64, error) {
	slot, err := c.client.GetSlot(ctx, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("unable to get current slot: %w", err)
	}

	return slot, nil
}
