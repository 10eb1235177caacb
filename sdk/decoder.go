package sdk

import (
	"github.com/smartcontractkit/timelock/types"
)

type DecodedOperation interface {
	MethodName() string
	Args() []any

	// String returns a human readable representation of the decoded operation.
	//
	// The first return value is the method name.
	// The second return value is a string representation of the input arguments.
	// The third return value is an error if there was an issue generating the string.
	String() (string, string, error)
}

// Decoder decodes the instruction data of queued operations.
//
// Only instructions of known programs can be decoded; everything else stays opaque.
type Decoder interface {
	Decode(op types.Operation) (DecodedOperation, error)
}
