package tendermint

import (
	"bytes"
	"time"

	cmttypes "github.com/cometbft/cometbft/types"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-verify/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-verify/modules/core/23-commitment/types"
	"github.com/cosmos/ibc-verify/modules/core/exported"
)

var _ exported.ClientMessage = (*Header)(nil)

// Header is the candidate update submitted by a relayer: a signed header with
// the validator set that committed it, plus the trusted height and validator
// set the light client should verify it against.
type Header struct {
	SignedHeader      *cmttypes.SignedHeader
	ValidatorSet      *cmttypes.ValidatorSet
	TrustedHeight     clienttypes.Height
	TrustedValidators *cmttypes.ValidatorSet
}

// ConsensusState returns the updated consensus state associated with the header
func (h Header) ConsensusState() *ConsensusState {
	return &ConsensusState{
		Timestamp:          h.GetTime(),
		Root:               commitmenttypes.NewMerkleRoot(h.SignedHeader.Header.AppHash),
		NextValidatorsHash: h.SignedHeader.Header.NextValidatorsHash,
	}
}

// ClientType defines that the Header is a Tendermint consensus algorithm
func (Header) ClientType() string {
	return exported.Tendermint
}

// GetHeight returns the current height. It returns 0 if the tendermint
// header is nil.
// NOTE: the header.Header is checked to be non nil in ValidateBasic.
func (h Header) GetHeight() exported.Height {
	revision := clienttypes.ParseChainID(h.SignedHeader.Header.ChainID)
	return clienttypes.NewHeight(revision, uint64(h.SignedHeader.Header.Height))
}

// GetTime returns the current block timestamp. It returns a zero time if
// the tendermint header is nil.
// NOTE: the header.Header is checked to be non nil in ValidateBasic.
func (h Header) GetTime() time.Time {
	return h.SignedHeader.Header.Time
}

// ValidateBasic calls the SignedHeader ValidateBasic function and checks
// that validatorsets are not nil.
// NOTE: TrustedHeight and TrustedValidators may be empty when creating client
// with MsgCreateClient
func (h Header) ValidateBasic() error {
	if h.SignedHeader == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "tendermint signed header cannot be nil")
	}
	if h.SignedHeader.Header == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "tendermint header cannot be nil")
	}

	if err := h.SignedHeader.ValidateBasic(h.SignedHeader.Header.ChainID); err != nil {
		return errorsmod.Wrap(err, "header failed basic validation")
	}

	// TrustedHeight is less than Header for updates and misbehaviour
	if h.TrustedHeight.GTE(h.GetHeight()) {
		return errorsmod.Wrapf(ErrInvalidHeaderHeight, "TrustedHeight %s must be less than header height %s",
			h.TrustedHeight, h.GetHeight())
	}

	if h.ValidatorSet == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "validator set is nil")
	}
	if !bytes.Equal(h.SignedHeader.Header.ValidatorsHash, h.ValidatorSet.Hash()) {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "validator set does not match hash")
	}
	return nil
}
