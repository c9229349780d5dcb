// Package ssz implements the one SSZ primitive the light client wire format
// handles directly: fixed-length bit vectors whose length is a protocol
// preset rather than a compile-time constant, so the length travels with
// the value instead of the type.
package ssz

import (
	"fmt"
	"math/bits"
)

// BitvectorSizeError is returned when serialized bits cannot be interpreted
// as a vector of the expected length.
type BitvectorSizeError struct {
	Bits  uint64 // expected vector length in bits
	Bytes []byte // the rejected serialization
}

func (e *BitvectorSizeError) Error() string {
	return fmt.Sprintf("cannot deserialize %d-bit bitvector from %d bytes (%#x)", e.Bits, len(e.Bytes), e.Bytes)
}

// Bitvector is a fixed-length bit vector in SSZ bit order (bit i lives at
// byte i/8, bit position i%8). The length is fixed at construction and is
// not part of the serialized form. The zero value is an empty vector.
type Bitvector struct {
	bits uint64
	data []byte
}

// NewBitvector returns an all-zero vector of the given length. Zero-length
// vectors serialize to nothing and are a caller error by the sync
// protocol's contract; no runtime check is made here.
func NewBitvector(bits uint64) Bitvector {
	return Bitvector{bits: bits, data: make([]byte, byteLength(bits))}
}

// BitvectorFromBytes deserializes data as a vector of exactly the given
// length. The byte count must match and, when the length is not a multiple
// of eight, the unused high bits of the final byte must be clear.
func BitvectorFromBytes(data []byte, bitLen uint64) (Bitvector, error) {
	if uint64(len(data)) != byteLength(bitLen) {
		return Bitvector{}, &BitvectorSizeError{Bits: bitLen, Bytes: append([]byte{}, data...)}
	}
	if rem := bitLen % 8; rem != 0 && len(data) > 0 {
		if data[len(data)-1]>>rem != 0 {
			return Bitvector{}, &BitvectorSizeError{Bits: bitLen, Bytes: append([]byte{}, data...)}
		}
	}
	return Bitvector{bits: bitLen, data: append([]byte{}, data...)}, nil
}

// Len returns the vector length in bits.
func (b Bitvector) Len() uint64 {
	return b.bits
}

// Bytes serializes the vector. The result is a copy and detached from the
// vector.
func (b Bitvector) Bytes() []byte {
	return append([]byte{}, b.data...)
}

// BitAt returns the bit at index idx, or false when idx is out of range.
func (b Bitvector) BitAt(idx uint64) bool {
	if idx >= b.bits {
		return false
	}
	return b.data[idx/8]&(1<<(idx%8)) != 0
}

// SetBitAt sets the bit at index idx to val. Out-of-range indices are
// ignored.
func (b Bitvector) SetBitAt(idx uint64, val bool) {
	if idx >= b.bits {
		return
	}
	if val {
		b.data[idx/8] |= 1 << (idx % 8)
	} else {
		b.data[idx/8] &^= 1 << (idx % 8)
	}
}

// Count returns the number of set bits.
func (b Bitvector) Count() uint64 {
	var c int
	for _, x := range b.data {
		c += bits.OnesCount8(x)
	}
	return uint64(c)
}

// Equal reports whether both vectors have the same length and bits.
func (b Bitvector) Equal(other Bitvector) bool {
	if b.bits != other.bits || len(b.data) != len(other.data) {
		return false
	}
	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

func byteLength(bits uint64) uint64 {
	return (bits + 7) / 8
}
