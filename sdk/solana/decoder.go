package solana

import (
	"encoding/json"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"

	"github.com/smartcontractkit/timelock/sdk"
	"github.com/smartcontractkit/timelock/types"
)

// ErrUnknownInstruction is returned when instruction data does not start with
// the discriminator of a governed timelock instruction.
var ErrUnknownInstruction = errors.New("unknown timelock instruction")

type Decoder struct{}

var _ sdk.Decoder = &Decoder{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

func (d *Decoder) Decode(op types.Operation) (sdk.DecodedOperation, error) {
	return DecodeInstruction(op.Data)
}

type DecodedOperation struct {
	FunctionName string
	InputKeys    []string
	InputArgs    []any
}

var _ sdk.DecodedOperation = &DecodedOperation{}

func (d *DecodedOperation) MethodName() string {
	return d.FunctionName
}

func (d *DecodedOperation) Args() []any {
	return d.InputArgs
}

func (d *DecodedOperation) String() (string, string, error) {
	inputMap := make(map[string]any)
	for i, key := range d.InputKeys {
		inputMap[key] = d.InputArgs[i]
	}

	byteMap, err := json.MarshalIndent(inputMap, "", "  ")
	if err != nil {
		return "", "", err
	}

	return d.FunctionName, string(byteMap), nil
}

// DecodeInstruction decodes the data of a governed timelock instruction.
func DecodeInstruction(data []byte) (*DecodedOperation, error) {
	dec := bin.NewBorshDecoder(data)
	discriminator, err := dec.ReadDiscriminator()
	if err != nil {
		return nil, fmt.Errorf("unable to read instruction discriminator: %w", err)
	}

	switch {
	case discriminator.Equal(SetDelayInSlotsDiscriminator):
		var args SetDelayInSlotsArgs
		if err := dec.Decode(&args); err != nil {
			return nil, fmt.Errorf("unable to decode %s args: %w", SetDelayInSlotsMethod, err)
		}

		return &DecodedOperation{
			FunctionName: SetDelayInSlotsMethod,
			InputKeys:    []string{"delayInSlots"},
			InputArgs:    []any{args.DelayInSlots},
		}, nil

	case discriminator.Equal(SetAuthorityDiscriminator):
		var args SetAuthorityArgs
		if err := dec.Decode(&args); err != nil {
			return nil, fmt.Errorf("unable to decode %s args: %w", SetAuthorityMethod, err)
		}

		return &DecodedOperation{
			FunctionName: SetAuthorityMethod,
			InputKeys:    []string{"newAuthority"},
			InputArgs:    []any{args.NewAuthority},
		}, nil
	}

	return nil, fmt.Errorf("%w: %x", ErrUnknownInstruction, discriminator[:])
}
