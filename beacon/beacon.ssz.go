package beacon

import (
	ssz "github.com/ferranbt/fastssz"

	fieldparams "github.com/yoshidan/ethereum-ibc-go/config/fieldparams"
	"github.com/yoshidan/ethereum-ibc-go/crypto/bls"
	sszenc "github.com/yoshidan/ethereum-ibc-go/encoding/ssz"
)

// IMPORTANT
// The methods in this file are hand-written patches to the beacon types.
// The structs use fixed-width hash and key types and a runtime committee
// size, which the ssz code generator does not understand.

// MarshalSSZ ssz marshals the BeaconBlockHeader object
func (b *BeaconBlockHeader) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(b)
}

// MarshalSSZTo ssz marshals the BeaconBlockHeader object to a target array
func (b *BeaconBlockHeader) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf

	// Field (0) 'Slot'
	dst = ssz.MarshalUint64(dst, uint64(b.Slot))

	// Field (1) 'ProposerIndex'
	dst = ssz.MarshalUint64(dst, uint64(b.ProposerIndex))

	// Field (2) 'ParentRoot'
	dst = append(dst, b.ParentRoot[:]...)

	// Field (3) 'StateRoot'
	dst = append(dst, b.StateRoot[:]...)

	// Field (4) 'BodyRoot'
	dst = append(dst, b.BodyRoot[:]...)

	return
}

// UnmarshalSSZ ssz unmarshals the BeaconBlockHeader object
func (b *BeaconBlockHeader) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size != 112 {
		return ssz.ErrSize
	}

	// Field (0) 'Slot'
	b.Slot = Slot(ssz.UnmarshallUint64(buf[0:8]))

	// Field (1) 'ProposerIndex'
	b.ProposerIndex = ValidatorIndex(ssz.UnmarshallUint64(buf[8:16]))

	// Field (2) 'ParentRoot'
	copy(b.ParentRoot[:], buf[16:48])

	// Field (3) 'StateRoot'
	copy(b.StateRoot[:], buf[48:80])

	// Field (4) 'BodyRoot'
	copy(b.BodyRoot[:], buf[80:112])

	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the BeaconBlockHeader object
func (b *BeaconBlockHeader) SizeSSZ() (size int) {
	size = 112
	return
}

// HashTreeRoot ssz hashes the BeaconBlockHeader object
func (b *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockHeader object with a hasher
func (b *BeaconBlockHeader) HashTreeRootWith(hh *ssz.Hasher) (err error) {
	indx := hh.Index()

	// Field (0) 'Slot'
	hh.PutUint64(uint64(b.Slot))

	// Field (1) 'ProposerIndex'
	hh.PutUint64(uint64(b.ProposerIndex))

	// Field (2) 'ParentRoot'
	hh.PutBytes(b.ParentRoot[:])

	// Field (3) 'StateRoot'
	hh.PutBytes(b.StateRoot[:])

	// Field (4) 'BodyRoot'
	hh.PutBytes(b.BodyRoot[:])

	hh.Merkleize(indx)
	return
}

// MarshalSSZ ssz marshals the SyncCommittee object
func (c *SyncCommittee) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(c)
}

// MarshalSSZTo ssz marshals the SyncCommittee object to a target array
func (c *SyncCommittee) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf

	// Field (0) 'Pubkeys'
	for ii := range c.Pubkeys {
		dst = append(dst, c.Pubkeys[ii][:]...)
	}

	// Field (1) 'AggregatePubkey'
	dst = append(dst, c.AggregatePubkey[:]...)

	return
}

// UnmarshalSSZ ssz unmarshals the SyncCommittee object. The committee size
// is recovered from the buffer length.
func (c *SyncCommittee) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size < fieldparams.BLSPubkeyLength || (size-fieldparams.BLSPubkeyLength)%fieldparams.BLSPubkeyLength != 0 {
		return ssz.ErrSize
	}

	// Field (0) 'Pubkeys'
	num := (size - fieldparams.BLSPubkeyLength) / fieldparams.BLSPubkeyLength
	c.Pubkeys = make([]bls.PublicKey, num)
	for ii := uint64(0); ii < num; ii++ {
		copy(c.Pubkeys[ii][:], buf[ii*fieldparams.BLSPubkeyLength:(ii+1)*fieldparams.BLSPubkeyLength])
	}

	// Field (1) 'AggregatePubkey'
	copy(c.AggregatePubkey[:], buf[size-fieldparams.BLSPubkeyLength:])

	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SyncCommittee object
func (c *SyncCommittee) SizeSSZ() (size int) {
	size = (len(c.Pubkeys) + 1) * fieldparams.BLSPubkeyLength
	return
}

// HashTreeRoot ssz hashes the SyncCommittee object
func (c *SyncCommittee) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(c)
}

// HashTreeRootWith ssz hashes the SyncCommittee object with a hasher
func (c *SyncCommittee) HashTreeRootWith(hh *ssz.Hasher) (err error) {
	indx := hh.Index()

	// Field (0) 'Pubkeys'
	{
		subIndx := hh.Index()
		for ii := range c.Pubkeys {
			hh.PutBytes(c.Pubkeys[ii][:])
		}
		hh.Merkleize(subIndx)
	}

	// Field (1) 'AggregatePubkey'
	hh.PutBytes(c.AggregatePubkey[:])

	hh.Merkleize(indx)
	return
}

// MarshalSSZ ssz marshals the SyncAggregate object
func (a *SyncAggregate) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(a)
}

// MarshalSSZTo ssz marshals the SyncAggregate object to a target array
func (a *SyncAggregate) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf

	// Field (0) 'SyncCommitteeBits'
	dst = append(dst, a.SyncCommitteeBits.Bytes()...)

	// Field (1) 'SyncCommitteeSignature'
	dst = append(dst, a.SyncCommitteeSignature[:]...)

	return
}

// UnmarshalSSZ ssz unmarshals the SyncAggregate object. The committee size
// is recovered from the buffer length and is always a multiple of eight.
func (a *SyncAggregate) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size <= fieldparams.BLSSignatureLength {
		return ssz.ErrSize
	}

	// Field (0) 'SyncCommitteeBits'
	bits, err := sszenc.BitvectorFromBytes(buf[:size-fieldparams.BLSSignatureLength], (size-fieldparams.BLSSignatureLength)*8)
	if err != nil {
		return err
	}
	a.SyncCommitteeBits = bits

	// Field (1) 'SyncCommitteeSignature'
	copy(a.SyncCommitteeSignature[:], buf[size-fieldparams.BLSSignatureLength:])

	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SyncAggregate object
func (a *SyncAggregate) SizeSSZ() (size int) {
	size = len(a.SyncCommitteeBits.Bytes()) + fieldparams.BLSSignatureLength
	return
}

// HashTreeRoot ssz hashes the SyncAggregate object
func (a *SyncAggregate) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(a)
}

// HashTreeRootWith ssz hashes the SyncAggregate object with a hasher
func (a *SyncAggregate) HashTreeRootWith(hh *ssz.Hasher) (err error) {
	indx := hh.Index()

	// Field (0) 'SyncCommitteeBits'
	hh.PutBytes(a.SyncCommitteeBits.Bytes())

	// Field (1) 'SyncCommitteeSignature'
	hh.PutBytes(a.SyncCommitteeSignature[:])

	hh.Merkleize(indx)
	return
}
