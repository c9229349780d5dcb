package lightclient

import (
	"time"

	"github.com/pkg/errors"

	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

// NewHeader assembles a header from freshly fetched updates, in the shape
// HeaderFromProto would produce. The timestamp is the finalized execution
// block's timestamp.
func NewHeader(
	trustedSyncCommittee *TrustedSyncCommittee,
	consensusUpdate *ConsensusUpdateInfo,
	executionUpdate *ExecutionUpdateInfo,
	accountUpdate *AccountUpdateInfo,
	timestamp time.Time,
) *Header {
	return &Header{
		trustedSyncCommittee: *trustedSyncCommittee,
		consensusUpdate:      consensusUpdate,
		executionUpdate:      executionUpdate,
		accountUpdate:        accountUpdate,
		timestamp:            timestamp,
	}
}

// HeaderFromProto decodes a wire header against the given committee size.
// Every sub-message is mandatory.
func HeaderFromProto(pb *ethpb.Header, syncCommitteeSize uint64) (*Header, error) {
	if pb == nil {
		return nil, errProtoMissing("header")
	}
	trusted, err := TrustedSyncCommitteeFromProto(pb.TrustedSyncCommittee, syncCommitteeSize)
	if err != nil {
		return nil, err
	}
	consensus, err := ConsensusUpdateFromProto(pb.ConsensusUpdate, syncCommitteeSize)
	if err != nil {
		return nil, err
	}
	execution, err := ExecutionUpdateFromProto(pb.ExecutionUpdate)
	if err != nil {
		return nil, err
	}
	account, err := AccountUpdateFromProto(pb.AccountUpdate)
	if err != nil {
		return nil, err
	}
	return &Header{
		trustedSyncCommittee: *trusted,
		consensusUpdate:      consensus,
		executionUpdate:      execution,
		accountUpdate:        account,
		timestamp:            pb.Timestamp,
	}, nil
}

// Proto encodes the header.
func (h *Header) Proto() *ethpb.Header {
	return &ethpb.Header{
		TrustedSyncCommittee: h.trustedSyncCommittee.Proto(),
		ConsensusUpdate:      h.consensusUpdate.Proto(),
		ExecutionUpdate:      h.executionUpdate.Proto(),
		AccountUpdate:        h.accountUpdate.Proto(),
		Timestamp:            h.timestamp,
	}
}

// TrustedSyncCommittee returns the committee the header is verified
// against.
func (h *Header) TrustedSyncCommittee() *TrustedSyncCommittee {
	return &h.trustedSyncCommittee
}

// ConsensusUpdate returns the finality update.
func (h *Header) ConsensusUpdate() *ConsensusUpdateInfo {
	return h.consensusUpdate
}

// ExecutionUpdate returns the execution payload summary.
func (h *Header) ExecutionUpdate() *ExecutionUpdateInfo {
	return h.executionUpdate
}

// AccountUpdate returns the IBC contract account update.
func (h *Header) AccountUpdate() *AccountUpdateInfo {
	return h.accountUpdate
}

// Timestamp returns the finalized execution block's timestamp.
func (h *Header) Timestamp() time.Time {
	return h.timestamp
}

// Validate checks the header can be submitted at all: the trusted committee
// must validate and the timestamp must be set. Whether the updates verify
// is the verifier's business.
func (h *Header) Validate() error {
	if err := h.trustedSyncCommittee.Validate(); err != nil {
		return err
	}
	if h.timestamp.IsZero() {
		return errors.New("timestamp cannot be zero")
	}
	return nil
}
