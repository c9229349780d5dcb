// Package clienttypes holds the IBC client-side primitives the light client
// records are expressed against, independent of any wire format.
package clienttypes

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidHeight is returned by NewHeight for heights no chain can be at.
var ErrInvalidHeight = errors.New("revision height cannot be zero")

// Height locates a point in a chain's history as a revision number (bumped
// on hard forks that reset the height) and a height within that revision.
// The zero value means "no height" and is only obtainable through
// ZeroHeight or by leaving a field unset.
type Height struct {
	revisionNumber uint64
	revisionHeight uint64
}

// NewHeight constructs a height, rejecting a zero revision height.
func NewHeight(revisionNumber, revisionHeight uint64) (Height, error) {
	if revisionHeight == 0 {
		return Height{}, ErrInvalidHeight
	}
	return Height{revisionNumber: revisionNumber, revisionHeight: revisionHeight}, nil
}

// ZeroHeight returns the sentinel "no height" value.
func ZeroHeight() Height {
	return Height{}
}

// RevisionNumber returns the revision the height belongs to.
func (h Height) RevisionNumber() uint64 {
	return h.revisionNumber
}

// RevisionHeight returns the height within the revision.
func (h Height) RevisionHeight() uint64 {
	return h.revisionHeight
}

// IsZero reports whether h is the "no height" sentinel.
func (h Height) IsZero() bool {
	return h.revisionNumber == 0 && h.revisionHeight == 0
}

func (h Height) String() string {
	return fmt.Sprintf("%d-%d", h.revisionNumber, h.revisionHeight)
}
