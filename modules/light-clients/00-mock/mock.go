// Package mock implements a trivial light client used to exercise host
// wiring. It accepts any MockHeader as a valid update and never detects
// misbehaviour on its own.
package mock

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-verify/modules/core/02-client/types"
	"github.com/cosmos/ibc-verify/modules/core/exported"
)

// ModuleName defines the mock client name and error codespace
const ModuleName = "00-mock"

// ErrInvalidClientMsg is returned when a client message of the wrong type is
// submitted to the mock client.
var ErrInvalidClientMsg = errorsmod.Register(ModuleName, 2, "invalid client message")

var (
	_ exported.ClientState    = (*ClientState)(nil)
	_ exported.ConsensusState = (*ConsensusState)(nil)
	_ exported.ClientMessage  = (*MockHeader)(nil)
)

// ClientState is the mock client trust state: just the latest height and a
// frozen flag.
type ClientState struct {
	LatestHeight clienttypes.Height
	Frozen       bool
}

// ClientType returns the mock client type.
func (*ClientState) ClientType() string {
	return exported.Mock
}

// GetLatestHeight returns the latest height.
func (cs *ClientState) GetLatestHeight() exported.Height {
	return cs.LatestHeight
}

// Validate performs a basic validation of the client state fields.
func (cs *ClientState) Validate() error {
	if cs.LatestHeight.IsZero() {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "latest height cannot be zero")
	}
	return nil
}

// ConsensusState is the mock consensus state: just a timestamp.
type ConsensusState struct {
	Timestamp uint64
}

// ClientType returns the mock client type.
func (*ConsensusState) ClientType() string {
	return exported.Mock
}

// GetRoot returns an empty commitment root.
func (*ConsensusState) GetRoot() exported.Root {
	return nil
}

// GetTimestamp returns the timestamp in nanoseconds.
func (m *ConsensusState) GetTimestamp() uint64 {
	return m.Timestamp
}

// ValidateBasic returns nil: any mock consensus state is valid.
func (*ConsensusState) ValidateBasic() error {
	return nil
}

// MockHeader is the client message accepted by the mock client.
type MockHeader struct {
	Height    clienttypes.Height
	Timestamp uint64
}

// ClientType returns the mock client type.
func (*MockHeader) ClientType() string {
	return exported.Mock
}

// ValidateBasic returns nil: any mock header is valid.
func (*MockHeader) ValidateBasic() error {
	return nil
}
