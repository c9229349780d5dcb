// Package relay assembles the wire header a relayer submits to update the
// light client on the destination chain. It sequences the fetches and the
// final bundling; talking to the upstream nodes is the UpdateSource
// implementation's job.
package relay

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yoshidan/ethereum-ibc-go/lightclient"
	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

// UpdateSource fetches the records a header is assembled from. An
// implementation typically wraps a beacon API client and an execution
// JSON-RPC client.
type UpdateSource interface {
	// TrustedSyncCommittee returns the committee the destination client
	// already trusts, by which the assembled update will be verified.
	TrustedSyncCommittee(ctx context.Context) (*lightclient.TrustedSyncCommittee, error)
	// LatestFinalityUpdate returns the most recent finality update seen on
	// the consensus layer.
	LatestFinalityUpdate(ctx context.Context) (*lightclient.ConsensusUpdateInfo, error)
	// ExecutionUpdate returns the execution payload summary proven by the
	// given finality update, together with the finalized execution block's
	// timestamp.
	ExecutionUpdate(ctx context.Context, update *lightclient.ConsensusUpdateInfo) (*lightclient.ExecutionUpdateInfo, time.Time, error)
	// AccountUpdate proves the IBC contract account under the execution
	// state at the given block number.
	AccountUpdate(ctx context.Context, blockNumber uint64) (*lightclient.AccountUpdateInfo, error)
}

// AssembleHeader fetches one of each record from src and bundles them into
// the wire header submitted to the destination chain. The header is
// validated before it is encoded; errors are returned to the caller rather
// than retried.
func AssembleHeader(ctx context.Context, src UpdateSource) (*ethpb.Header, error) {
	trusted, err := src.TrustedSyncCommittee(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch trusted sync committee")
	}
	consensus, err := src.LatestFinalityUpdate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch finality update")
	}
	execution, timestamp, err := src.ExecutionUpdate(ctx, consensus)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch execution update")
	}
	account, err := src.AccountUpdate(ctx, execution.BlockNumber())
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch account update")
	}

	header := lightclient.NewHeader(trusted, consensus, execution, account, timestamp)
	if err := header.Validate(); err != nil {
		return nil, errors.Wrap(err, "assembled header is invalid")
	}

	log.WithFields(logrus.Fields{
		"attestedSlot":  consensus.AttestedBeaconHeader().Slot,
		"finalizedSlot": consensus.FinalizedBeaconHeader().Slot,
		"signatureSlot": consensus.SignatureSlot(),
		"blockNumber":   execution.BlockNumber(),
		"participation": consensus.SyncAggregate().Participation(),
		"committeeSize": consensus.SyncAggregate().CommitteeSize(),
		"rotation":      consensus.NextSyncCommittee() != nil,
	}).Debug("Assembled light client header")

	return header.Proto(), nil
}
