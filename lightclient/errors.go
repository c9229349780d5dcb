package lightclient

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidHashLength is returned when a wire byte string mapped to a
	// 32-byte hash is not exactly 32 bytes. Wire hashes are taken verbatim,
	// never padded or truncated.
	ErrInvalidHashLength = errors.New("invalid hash length")
	// ErrInvalidAccountProof is returned when account proof bytes are not a
	// well-formed RLP list.
	ErrInvalidAccountProof = errors.New("invalid EIP-1184 account proof")
	// ErrInvalidAddressLength is returned when a wire byte string mapped to
	// a 20-byte execution address is not exactly 20 bytes.
	ErrInvalidAddressLength = errors.New("invalid address length")
)

// MissingFieldError is returned when a required wire sub-message is absent.
// Field is the proto field name as it appears in the schema.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("proto field is missing: %s", e.Field)
}

func errProtoMissing(field string) error {
	return &MissingFieldError{Field: field}
}

// UnexpectedHeightRevisionNumberError is returned by trusted sync committee
// validation when a height carries a revision number other than the fixed
// ethereum client revision.
type UnexpectedHeightRevisionNumberError struct {
	Expected uint64
	Got      uint64
}

func (e *UnexpectedHeightRevisionNumberError) Error() string {
	return fmt.Sprintf("unexpected height revision number: expected %d, got %d", e.Expected, e.Got)
}

// UnexpectedSyncCommitteeSizeError is returned when a wire committee's pubkey
// count differs from the size the caller decodes against.
type UnexpectedSyncCommitteeSizeError struct {
	Expected uint64
	Got      uint64
}

func (e *UnexpectedSyncCommitteeSizeError) Error() string {
	return fmt.Sprintf("unexpected sync committee size: expected %d pubkeys, got %d", e.Expected, e.Got)
}
