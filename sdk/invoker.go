package sdk

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Invoker dispatches an instruction to another program. An invocation is a
// single atomic effect: it either fully applies or returns an error and
// applies nothing.
type Invoker interface {
	Invoke(
		ctx context.Context,
		programID solana.PublicKey,
		accounts []*solana.AccountMeta,
		data []byte,
		signers []solana.PublicKey,
	) error
}

// Program is the receiving end of an invocation.
//
// signers holds every identity that authorized the call, including program
// derived signers presented by the invoking program.
type Program interface {
	Process(ctx context.Context, accounts []*solana.AccountMeta, data []byte, signers []solana.PublicKey) error
}

// ProgramFunc adapts a plain function to the Program interface.
type ProgramFunc func(ctx context.Context, accounts []*solana.AccountMeta, data []byte, signers []solana.PublicKey) error

// Process calls f.
func (f ProgramFunc) Process(ctx context.Context, accounts []*solana.AccountMeta, data []byte, signers []solana.PublicKey) error {
	return f(ctx, accounts, data, signers)
}
