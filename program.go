package timelock

import (
	"context"
	"fmt"
	"slices"

	"github.com/gagliardetto/solana-go"

	solanasdk "github.com/smartcontractkit/timelock/sdk/solana"
)

// Process handles the instructions that can only reach the engine through a
// queued operation: set_delay_in_slots and set_authority. Accounts are
// [timelock (writable), timelock signer (signer)].
func (e *Engine) Process(ctx context.Context, accounts []*solana.AccountMeta, data []byte, signers []solana.PublicKey) error {
	decoded, err := solanasdk.DecodeInstruction(data)
	if err != nil {
		return err
	}

	if len(accounts) < 2 {
		return NewAccountMismatchError(-1, fmt.Sprintf("%s expects 2 accounts, got %d", decoded.FunctionName, len(accounts)))
	}
	timelockAccount, signerAccount := accounts[0], accounts[1]
	if !timelockAccount.IsWritable {
		return NewAccountMismatchError(0, "timelock account must be writable")
	}
	if !signerAccount.IsSigner || !slices.Contains(signers, signerAccount.PublicKey) {
		timelockSigner, err := e.GetTimelockSigner(ctx, timelockAccount.PublicKey)
		if err != nil {
			return err
		}

		return NewUnauthorizedError(signerAccount.PublicKey, timelockSigner)
	}

	switch decoded.FunctionName {
	case solanasdk.SetDelayInSlotsMethod:
		delay, ok := decoded.InputArgs[0].(uint64)
		if !ok {
			return fmt.Errorf("unexpected %s argument %T", decoded.FunctionName, decoded.InputArgs[0])
		}

		return e.SetDelay(ctx, timelockAccount.PublicKey, signerAccount.PublicKey, delay)

	case solanasdk.SetAuthorityMethod:
		authority, ok := decoded.InputArgs[0].(solana.PublicKey)
		if !ok {
			return fmt.Errorf("unexpected %s argument %T", decoded.FunctionName, decoded.InputArgs[0])
		}

		return e.SetAuthority(ctx, timelockAccount.PublicKey, signerAccount.PublicKey, authority)
	}

	return fmt.Errorf("%w: %s", solanasdk.ErrUnknownInstruction, decoded.FunctionName)
}
