package timelock

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/smartcontractkit/timelock/sdk"
	"github.com/smartcontractkit/timelock/types"
)

// InitializeTimelock creates the timelock record at id. The signer bump is
// found once here and stored so later calls can re-derive the signer.
func (e *Engine) InitializeTimelock(
	ctx context.Context,
	id solana.PublicKey,
	authority solana.PublicKey,
	delayInSlots uint64,
) (*types.Timelock, error) {
	unlock := e.locks.Lock(id)
	defer unlock()

	_, bump, err := e.deriver.FindSigner(id)
	if err != nil {
		return nil, err
	}

	tl := &types.Timelock{
		Authority:    authority,
		DelayInSlots: delayInSlots,
		SignerBump:   bump,
	}
	data, err := tl.Encode()
	if err != nil {
		return nil, err
	}
	if err := e.createAccount(ctx, id, data); err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Infof("initialized timelock %s with authority %s and delay of %d slots", id, authority, delayInSlots)

	return tl, nil
}

// SetAuthority replaces the authority of a timelock. signer must be the
// timelock's own signer, which only happens when the call is dispatched from
// a queued operation.
func (e *Engine) SetAuthority(ctx context.Context, id solana.PublicKey, signer solana.PublicKey, newAuthority solana.PublicKey) error {
	return e.updateTimelock(ctx, id, signer, func(tl *types.Timelock) {
		sdk.LoggerFrom(ctx).Infof("timelock %s authority changed from %s to %s", id, tl.Authority, newAuthority)
		tl.Authority = newAuthority
	})
}

// SetDelay replaces the delay of a timelock. Same signer rules as SetAuthority.
func (e *Engine) SetDelay(ctx context.Context, id solana.PublicKey, signer solana.PublicKey, newDelayInSlots uint64) error {
	return e.updateTimelock(ctx, id, signer, func(tl *types.Timelock) {
		sdk.LoggerFrom(ctx).Infof("timelock %s delay changed from %d to %d slots", id, tl.DelayInSlots, newDelayInSlots)
		tl.DelayInSlots = newDelayInSlots
	})
}

func (e *Engine) updateTimelock(ctx context.Context, id solana.PublicKey, signer solana.PublicKey, update func(*types.Timelock)) error {
	unlock := e.locks.Lock(id)
	defer unlock()

	tl, err := e.GetTimelock(ctx, id)
	if err != nil {
		return err
	}

	timelockSigner, err := e.deriver.CreateSigner(id, tl.SignerBump)
	if err != nil {
		return fmt.Errorf("unable to derive timelock signer: %w", err)
	}
	if signer != timelockSigner {
		return NewUnauthorizedError(signer, timelockSigner)
	}

	update(tl)

	return e.putTimelock(ctx, id, tl)
}
