package solana

import (
	"github.com/gagliardetto/solana-go"
)

var (
	testProgramID  = solana.MustPublicKeyFromBase58("7wTNNa26MRFt18kKPz6t3oD3RuKcfN3PjUjLG9tHbWH2")
	testTimelockID = solana.MustPublicKeyFromBase58("6UmMZr5MEqiKWD5jqTJd1WCR5kT8oZuFYBLJFi1o6GQX")
)
