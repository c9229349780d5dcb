package beacon

import (
	"github.com/pkg/errors"

	"github.com/yoshidan/ethereum-ibc-go/crypto/bls"
	"github.com/yoshidan/ethereum-ibc-go/encoding/ssz"
)

var (
	// ErrEmptySyncCommittee means a committee carried no public keys and
	// therefore cannot anchor any signature check.
	ErrEmptySyncCommittee = errors.New("sync committee has no pubkeys")
	// ErrEmptyAggregatePubkey means a committee carried no usable
	// aggregate public key.
	ErrEmptyAggregatePubkey = errors.New("sync committee aggregate pubkey is empty")
)

// SyncCommittee is the rotating set of validators whose aggregate
// signature attests beacon block headers. The committee size is a protocol
// preset carried by the slice length, not by the type.
type SyncCommittee struct {
	Pubkeys         []bls.PublicKey
	AggregatePubkey bls.PublicKey
}

// Size returns the number of committee members.
func (c *SyncCommittee) Size() uint64 {
	return uint64(len(c.Pubkeys))
}

// Validate checks that the committee is structurally usable as a trust
// anchor. It does not check that the keys are valid curve points; that is
// the verifier's concern.
func (c *SyncCommittee) Validate() error {
	if len(c.Pubkeys) == 0 {
		return ErrEmptySyncCommittee
	}
	if c.AggregatePubkey.IsZero() {
		return ErrEmptyAggregatePubkey
	}
	return nil
}

// Equal reports whether both committees hold the same keys in the same
// order.
func (c *SyncCommittee) Equal(other *SyncCommittee) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.Pubkeys) != len(other.Pubkeys) {
		return false
	}
	for i := range c.Pubkeys {
		if c.Pubkeys[i] != other.Pubkeys[i] {
			return false
		}
	}
	return c.AggregatePubkey == other.AggregatePubkey
}

// SyncAggregate records which committee members co-signed a beacon block
// header together with their aggregated signature. The bit vector length
// equals the committee size.
type SyncAggregate struct {
	SyncCommitteeBits      ssz.Bitvector
	SyncCommitteeSignature bls.Signature
}

// CommitteeSize returns the committee size the aggregate was built for.
func (a *SyncAggregate) CommitteeSize() uint64 {
	return a.SyncCommitteeBits.Len()
}

// Participation returns the number of committee members that signed.
func (a *SyncAggregate) Participation() uint64 {
	return a.SyncCommitteeBits.Count()
}
