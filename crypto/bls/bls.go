// Package bls holds the byte-level representations of BLS12-381 public keys
// and signatures carried by the sync protocol wire format. Only the fixed
// compressed widths are enforced here; curve and pairing checks belong to
// the verification engine consuming these values.
package bls

import (
	"github.com/pkg/errors"

	fieldparams "github.com/yoshidan/ethereum-ibc-go/config/fieldparams"
)

var (
	// ErrInvalidPublicKeyLength is returned when a public key is not a
	// compressed G1 point width.
	ErrInvalidPublicKeyLength = errors.New("invalid BLS public key length")
	// ErrInvalidSignatureLength is returned when a signature is not a
	// compressed G2 point width.
	ErrInvalidSignatureLength = errors.New("invalid BLS signature length")
)

// PublicKey is a compressed BLS12-381 G1 point.
type PublicKey [fieldparams.BLSPubkeyLength]byte

// Signature is a compressed BLS12-381 G2 point.
type Signature [fieldparams.BLSSignatureLength]byte

// PublicKeyFromBytes interprets b as a compressed public key. The bytes are
// taken verbatim; anything other than the exact compressed width fails.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != fieldparams.BLSPubkeyLength {
		return PublicKey{}, errors.Wrapf(ErrInvalidPublicKeyLength, "expected %d bytes, got %d", fieldparams.BLSPubkeyLength, len(b))
	}
	var pk PublicKey
	copy(pk[:], b)
	return pk, nil
}

// SignatureFromBytes interprets b as a compressed signature. The bytes are
// taken verbatim; anything other than the exact compressed width fails.
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != fieldparams.BLSSignatureLength {
		return Signature{}, errors.Wrapf(ErrInvalidSignatureLength, "expected %d bytes, got %d", fieldparams.BLSSignatureLength, len(b))
	}
	var sig Signature
	copy(sig[:], b)
	return sig, nil
}

// Marshal returns the compressed byte representation of the public key.
func (p PublicKey) Marshal() []byte {
	return append([]byte{}, p[:]...)
}

// IsZero reports whether the key is the all-zero value, which is not a valid
// compressed point and marks an unset key.
func (p PublicKey) IsZero() bool {
	return p == PublicKey{}
}

// Marshal returns the compressed byte representation of the signature.
func (s Signature) Marshal() []byte {
	return append([]byte{}, s[:]...)
}
