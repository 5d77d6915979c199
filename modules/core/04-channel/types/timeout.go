package types

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-verify/modules/core/02-client/types"
	"github.com/cosmos/ibc-verify/modules/core/exported"
)

// TimeoutHeight is the height bound of a packet timeout. The zero value means
// the packet never times out on height. Because a zero Height is illegal, the
// raw wire pair (0, 0) is reserved for "never" and any other raw pair with a
// zero revision height is rejected.
type TimeoutHeight struct {
	height clienttypes.Height
	set    bool
}

// NewTimeoutHeight constructs a TimeoutHeight from raw revision fields. The
// pair (0, 0) maps to the "never" sentinel; any other pair must form a valid
// height.
func NewTimeoutHeight(revisionNumber, revisionHeight uint64) (TimeoutHeight, error) {
	if revisionNumber == 0 && revisionHeight == 0 {
		return TimeoutHeight{}, nil
	}
	if revisionHeight == 0 {
		return TimeoutHeight{}, errorsmod.Wrapf(clienttypes.ErrZeroHeight, "timeout revision height cannot be zero with revision number %d", revisionNumber)
	}
	return TimeoutHeight{
		height: clienttypes.NewHeight(revisionNumber, revisionHeight),
		set:    true,
	}, nil
}

// MustNewTimeoutHeight constructs a TimeoutHeight from raw revision fields and
// panics on failure.
func MustNewTimeoutHeight(revisionNumber, revisionHeight uint64) TimeoutHeight {
	timeoutHeight, err := NewTimeoutHeight(revisionNumber, revisionHeight)
	if err != nil {
		panic(err)
	}
	return timeoutHeight
}

// IsNever returns true if the timeout carries no height bound.
func (th TimeoutHeight) IsNever() bool {
	return !th.set
}

// Height returns the height bound and whether one is set.
func (th TimeoutHeight) Height() (clienttypes.Height, bool) {
	return th.height, th.set
}

// HasExpired returns true if the given chain height is strictly past the
// timeout height. A timeout without a height bound never expires.
func (th TimeoutHeight) HasExpired(height exported.Height) bool {
	if th.IsNever() {
		return false
	}
	return height.GT(th.height)
}

// CommitmentRevisionNumber returns the revision number committed to for this
// timeout. The "never" sentinel commits to zero.
func (th TimeoutHeight) CommitmentRevisionNumber() uint64 {
	if th.IsNever() {
		return 0
	}
	return th.height.GetRevisionNumber()
}

// CommitmentRevisionHeight returns the revision height committed to for this
// timeout. The "never" sentinel commits to zero.
func (th TimeoutHeight) CommitmentRevisionHeight() uint64 {
	if th.IsNever() {
		return 0
	}
	return th.height.GetRevisionHeight()
}

// String returns the canonical string form, "0-0" for the "never" sentinel.
func (th TimeoutHeight) String() string {
	if th.IsNever() {
		return "0-0"
	}
	return th.height.String()
}

// ParseTimeoutHeight parses the canonical string form of a timeout height. The
// literal "0-0" is the "never" sentinel; any other string must parse as a
// valid height.
func ParseTimeoutHeight(timeoutHeightStr string) (TimeoutHeight, error) {
	if timeoutHeightStr == "0-0" {
		return TimeoutHeight{}, nil
	}
	height, err := clienttypes.ParseHeight(timeoutHeightStr)
	if err != nil {
		return TimeoutHeight{}, err
	}
	return TimeoutHeight{height: height, set: true}, nil
}
