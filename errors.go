package timelock

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/smartcontractkit/timelock/types"
)

// ErrorCode identifies an engine error kind. Codes start at 6000 to line up
// with custom program error numbering on Solana.
type ErrorCode uint32

const (
	ErrorCodeUnauthorized ErrorCode = 6000 + iota
	ErrorCodeInvalidState
	ErrorCodeNotReady
	ErrorCodeAlreadyExecuted
	ErrorCodeAccountMismatch
	ErrorCodeBatchFull
	ErrorCodeAlreadyInitialized
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeUnauthorized:       "Unauthorized",
	ErrorCodeInvalidState:       "InvalidState",
	ErrorCodeNotReady:           "NotReady",
	ErrorCodeAlreadyExecuted:    "AlreadyExecuted",
	ErrorCodeAccountMismatch:    "AccountMismatch",
	ErrorCodeBatchFull:          "BatchFull",
	ErrorCodeAlreadyInitialized: "AlreadyInitialized",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}

	return fmt.Sprintf("ErrorCode(%d)", uint32(c))
}

// CodedError is implemented by every error the engine reports to callers.
type CodedError interface {
	error
	Code() ErrorCode
}

// CodeOf returns the code of the first CodedError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.Code(), true
	}

	return 0, false
}

// UnauthorizedError is returned when the caller is not the identity a
// transition requires.
type UnauthorizedError struct {
	Caller   solana.PublicKey
	Required solana.PublicKey
}

func NewUnauthorizedError(caller, required solana.PublicKey) *UnauthorizedError {
	return &UnauthorizedError{Caller: caller, Required: required}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s is not %s", e.Caller, e.Required)
}

func (e *UnauthorizedError) Code() ErrorCode { return ErrorCodeUnauthorized }

// InvalidStateError is returned when a batch transition is attempted from a
// status that does not allow it.
type InvalidStateError struct {
	Action string
	Status types.BatchStatus
}

func NewInvalidStateError(action string, status types.BatchStatus) *InvalidStateError {
	return &InvalidStateError{Action: action, Status: status}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: cannot %s batch in status %s", e.Action, e.Status)
}

func (e *InvalidStateError) Code() ErrorCode { return ErrorCodeInvalidState }

// NotReadyError is returned when the delay of an operation has not elapsed.
// The caller may retry once the clock is past ReadyAfterSlot.
type NotReadyError struct {
	CurrentSlot    uint64
	ReadyAfterSlot uint64
}

func NewNotReadyError(current, readyAfter uint64) *NotReadyError {
	return &NotReadyError{CurrentSlot: current, ReadyAfterSlot: readyAfter}
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("operation not ready: current slot %d, ready after slot %d", e.CurrentSlot, e.ReadyAfterSlot)
}

func (e *NotReadyError) Code() ErrorCode { return ErrorCodeNotReady }

// AlreadyExecutedError is returned when nothing is left to execute.
type AlreadyExecutedError struct {
	Account solana.PublicKey
}

func NewAlreadyExecutedError(account solana.PublicKey) *AlreadyExecutedError {
	return &AlreadyExecutedError{Account: account}
}

func (e *AlreadyExecutedError) Error() string {
	return fmt.Sprintf("already executed: %s", e.Account)
}

func (e *AlreadyExecutedError) Code() ErrorCode { return ErrorCodeAlreadyExecuted }

// AccountMismatchError is returned when the accounts supplied to an execution
// do not match the stored operation. Index is -1 when the mismatch is not tied
// to a single account.
type AccountMismatchError struct {
	Index  int
	Reason string
}

func NewAccountMismatchError(index int, reason string) *AccountMismatchError {
	return &AccountMismatchError{Index: index, Reason: reason}
}

func (e *AccountMismatchError) Error() string {
	if e.Index < 0 {
		return "account mismatch: " + e.Reason
	}

	return fmt.Sprintf("account mismatch at index %d: %s", e.Index, e.Reason)
}

func (e *AccountMismatchError) Code() ErrorCode { return ErrorCodeAccountMismatch }

// BatchFullError is returned when adding an operation to a full batch.
type BatchFullError struct {
	Capacity uint16
}

func NewBatchFullError(capacity uint16) *BatchFullError {
	return &BatchFullError{Capacity: capacity}
}

func (e *BatchFullError) Error() string {
	return fmt.Sprintf("batch full: capacity of %d operations reached", e.Capacity)
}

func (e *BatchFullError) Code() ErrorCode { return ErrorCodeBatchFull }

// AlreadyInitializedError is returned when creating a record at an address
// that is already in use.
type AlreadyInitializedError struct {
	Account solana.PublicKey
}

func NewAlreadyInitializedError(account solana.PublicKey) *AlreadyInitializedError {
	return &AlreadyInitializedError{Account: account}
}

func (e *AlreadyInitializedError) Error() string {
	return fmt.Sprintf("already initialized: %s", e.Account)
}

func (e *AlreadyInitializedError) Code() ErrorCode { return ErrorCodeAlreadyInitialized }
