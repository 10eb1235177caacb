package solana

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/smartcontractkit/timelock/types"
)

// HashOperation hashes one or more queued operations into a stable identifier.
// The account list and the data are each prefixed with their length. The
// execution flags are not part of the hash.
func HashOperation(ops ...types.Operation) [32]byte {
	var encodedData bytes.Buffer

	for _, op := range ops {
		encodedData.Write(op.ProgramID[:])

		writeLength(&encodedData, len(op.Accounts))
		for _, acc := range op.Accounts {
			encodedData.Write(acc.Pubkey[:])
			if acc.IsSigner {
				encodedData.WriteByte(1)
			} else {
				encodedData.WriteByte(0)
			}
			if acc.IsWritable {
				encodedData.WriteByte(1)
			} else {
				encodedData.WriteByte(0)
			}
		}
		writeLength(&encodedData, len(op.Data))
		encodedData.Write(op.Data)
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(encodedData.Bytes())

	var hash [32]byte
	copy(hash[:], h.Sum(nil))

	return hash
}

func writeLength(buf *bytes.Buffer, n int) {
	buf.Write(binary.LittleEndian.AppendUint64(nil, uint64(n)))
}
