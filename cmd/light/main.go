// Command light decodes an ethereum light client wire header and prints
// what it carries. It is a debugging surface over the codec, not a
// verifier: nothing here checks signatures or Merkle branches.
package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/yoshidan/ethereum-ibc-go/config/params"
	"github.com/yoshidan/ethereum-ibc-go/lightclient"
	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

var log = logrus.WithField("prefix", "light")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "light",
		Usage: "decode and inspect an ethereum light client wire header",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "path to the encoded header, raw proto bytes or hex",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "committee-size",
				Usage: "sync committee size the header was built for",
				Value: params.MainnetConfig().SyncCommitteeSize,
			},
		},
		Action: inspect,
	}
}

func inspect(c *cli.Context) error {
	bz, err := os.ReadFile(c.String("input"))
	if err != nil {
		return errors.Wrap(err, "could not read input")
	}
	bz = normalizeInput(bz)

	var pb ethpb.Header
	if err := pb.Unmarshal(bz); err != nil {
		return errors.Wrap(err, "could not unmarshal header")
	}
	header, err := lightclient.HeaderFromProto(&pb, c.Uint64("committee-size"))
	if err != nil {
		return errors.Wrap(err, "could not decode header")
	}
	if err := header.Validate(); err != nil {
		return errors.Wrap(err, "header is invalid")
	}

	trusted := header.TrustedSyncCommittee()
	log.WithFields(logrus.Fields{
		"height": trusted.Height().String(),
		"isNext": trusted.IsNext(),
		"size":   trusted.SyncCommittee().Size(),
	}).Info("Trusted sync committee")

	update := header.ConsensusUpdate()
	log.WithFields(logrus.Fields{
		"attestedSlot":  update.AttestedBeaconHeader().Slot,
		"finalizedSlot": update.FinalizedBeaconHeader().Slot,
		"signatureSlot": update.SignatureSlot(),
		"participation": update.SyncAggregate().Participation(),
		"committeeSize": update.SyncAggregate().CommitteeSize(),
		"rotation":      update.NextSyncCommittee() != nil,
	}).Info("Consensus update")

	execution := header.ExecutionUpdate()
	log.WithFields(logrus.Fields{
		"blockNumber": execution.BlockNumber(),
		"stateRoot":   execution.StateRoot(),
		"timestamp":   header.Timestamp(),
	}).Info("Execution update")

	account := header.AccountUpdate()
	log.WithFields(logrus.Fields{
		"storageRoot": account.AccountStorageRoot(),
		"proofNodes":  len(account.AccountProof()),
	}).Info("Account update")

	return nil
}

// normalizeInput accepts either raw proto bytes or their hex form, with or
// without a 0x prefix.
func normalizeInput(bz []byte) []byte {
	s := strings.TrimSpace(string(bz))
	s = strings.TrimPrefix(s, "0x")
	if decoded, err := hex.DecodeString(s); err == nil {
		return decoded
	}
	return bz
}
