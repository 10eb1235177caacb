package types

import (
	"github.com/gagliardetto/solana-go"
)

// MaxOperationAccounts is the largest account list a single queued operation may carry.
const MaxOperationAccounts = 64

// InstructionAccount describes one account passed to a queued instruction.
type InstructionAccount struct {
	Pubkey     solana.PublicKey `json:"pubkey"`
	IsSigner   bool             `json:"isSigner"`
	IsWritable bool             `json:"isWritable"`
}

// AccountMeta converts the account into the solana-go representation.
func (a InstructionAccount) AccountMeta() *solana.AccountMeta {
	return solana.NewAccountMeta(a.Pubkey, a.IsWritable, a.IsSigner)
}

// Operation is a single instruction queued against a timelock: the target
// program, the accounts it is called with and the opaque instruction data.
type Operation struct {
	ProgramID  solana.PublicKey     `json:"programId" validate:"required"`
	Accounts   []InstructionAccount `json:"accounts" validate:"max=64"`
	Data       []byte               `json:"data"`
	DidExecute bool                 `json:"didExecute"`
}

// AccountMetas returns the stored accounts as solana-go account metas.
func (o Operation) AccountMetas() []*solana.AccountMeta {
	metas := make([]*solana.AccountMeta, len(o.Accounts))
	for i, acc := range o.Accounts {
		metas[i] = acc.AccountMeta()
	}

	return metas
}

// Clone returns a deep copy of the operation.
func (o Operation) Clone() Operation {
	out := o
	if o.Accounts != nil {
		out.Accounts = append([]InstructionAccount(nil), o.Accounts...)
	}
	if o.Data != nil {
		out.Data = append([]byte(nil), o.Data...)
	}

	return out
}
