package mock

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-verify/modules/core/02-client/types"
	"github.com/cosmos/ibc-verify/modules/core/exported"
)

var _ exported.LightClientModule = (*LightClientModule)(nil)

// LightClientModule implements the core exported.LightClientModule interface
// for the mock client.
type LightClientModule struct {
	storeProvider clienttypes.StoreProvider
}

// NewLightClientModule creates and returns a new 00-mock LightClientModule.
func NewLightClientModule(storeProvider clienttypes.StoreProvider) LightClientModule {
	return LightClientModule{
		storeProvider: storeProvider,
	}
}

// Initialize validates the client and consensus state and persists them.
func (l LightClientModule) Initialize(ctx exported.HostContext, clientID string, clientStateI exported.ClientState, consensusStateI exported.ConsensusState) error {
	clientState, ok := clientStateI.(*ClientState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidClient, "expected client state type %T, got %T", &ClientState{}, clientStateI)
	}

	if err := clientState.Validate(); err != nil {
		return err
	}

	consensusState, ok := consensusStateI.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "expected consensus state type %T, got %T", &ConsensusState{}, consensusStateI)
	}

	clientStore := l.storeProvider.ClientStore(clientID)
	clientStore.SetClientState(clientState)
	clientStore.SetConsensusState(clientState.LatestHeight, consensusState)
	clientStore.SetProcessedTime(clientState.LatestHeight, uint64(ctx.HostTimestamp().UnixNano()))
	clientStore.SetProcessedHeight(clientState.LatestHeight, ctx.HostHeight())

	return nil
}

// VerifyClientMessage checks if the clientMessage is the correct type.
func (l LightClientModule) VerifyClientMessage(ctx exported.HostContext, clientID string, clientMsg exported.ClientMessage) error {
	if _, ok := clientMsg.(*MockHeader); !ok {
		return errorsmod.Wrapf(ErrInvalidClientMsg, "invalid client message type %T", clientMsg)
	}
	return nil
}

// CheckForMisbehaviour returns false: the mock client cannot prove
// misbehaviour.
func (l LightClientModule) CheckForMisbehaviour(ctx exported.HostContext, clientID string, clientMsg exported.ClientMessage) bool {
	return false
}

// UpdateStateOnMisbehaviour freezes the mock client.
func (l LightClientModule) UpdateStateOnMisbehaviour(ctx exported.HostContext, clientID string, clientMsg exported.ClientMessage) {
	clientStore := l.storeProvider.ClientStore(clientID)
	clientState, found := l.getClientState(clientID)
	if !found {
		panic(errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID))
	}

	clientState.Frozen = true
	clientStore.SetClientState(clientState)
}

// UpdateState stores the consensus state from the mock header and advances the
// latest height.
func (l LightClientModule) UpdateState(ctx exported.HostContext, clientID string, clientMsg exported.ClientMessage) []exported.Height {
	mockHeader, ok := clientMsg.(*MockHeader)
	if !ok {
		panic(errorsmod.Wrapf(ErrInvalidClientMsg, "invalid client message type %T", clientMsg))
	}

	clientStore := l.storeProvider.ClientStore(clientID)
	clientState, found := l.getClientState(clientID)
	if !found {
		panic(errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID))
	}

	clientState.LatestHeight = mockHeader.Height

	clientStore.SetClientState(clientState)
	clientStore.SetConsensusState(mockHeader.Height, &ConsensusState{Timestamp: mockHeader.Timestamp})
	clientStore.SetProcessedTime(mockHeader.Height, uint64(ctx.HostTimestamp().UnixNano()))
	clientStore.SetProcessedHeight(mockHeader.Height, ctx.HostHeight())

	return []exported.Height{mockHeader.Height}
}

// VerifyMembership accepts any proof against the mock client.
func (l LightClientModule) VerifyMembership(
	ctx exported.HostContext,
	clientID string,
	height exported.Height,
	delayTimePeriod uint64,
	delayBlockPeriod uint64,
	proof exported.Proof,
	path exported.Path,
	value []byte,
) error {
	if _, found := l.getClientState(clientID); !found {
		return errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID)
	}
	return nil
}

// VerifyNonMembership accepts any proof against the mock client.
func (l LightClientModule) VerifyNonMembership(
	ctx exported.HostContext,
	clientID string,
	height exported.Height,
	delayTimePeriod uint64,
	delayBlockPeriod uint64,
	proof exported.Proof,
	path exported.Path,
) error {
	if _, found := l.getClientState(clientID); !found {
		return errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID)
	}
	return nil
}

// Status returns Frozen if the mock client has been frozen, otherwise Active.
func (l LightClientModule) Status(ctx exported.HostContext, clientID string) exported.Status {
	clientState, found := l.getClientState(clientID)
	if !found {
		return exported.Unknown
	}
	if clientState.Frozen {
		return exported.Frozen
	}
	return exported.Active
}

// LatestHeight returns the latest height for the client state for the given client identifier.
func (l LightClientModule) LatestHeight(ctx exported.HostContext, clientID string) exported.Height {
	clientState, found := l.getClientState(clientID)
	if !found {
		return clienttypes.ZeroHeight()
	}
	return clientState.LatestHeight
}

// TimestampAtHeight returns the timestamp of the consensus state at the given height.
func (l LightClientModule) TimestampAtHeight(ctx exported.HostContext, clientID string, height exported.Height) (uint64, error) {
	clientStore := l.storeProvider.ClientStore(clientID)
	consensusState, found := clientStore.GetConsensusState(height)
	if !found {
		return 0, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "height (%s)", height)
	}
	return consensusState.GetTimestamp(), nil
}

func (l LightClientModule) getClientState(clientID string) (*ClientState, bool) {
	clientStore := l.storeProvider.ClientStore(clientID)
	clientStateI, found := clientStore.GetClientState()
	if !found {
		return nil, false
	}

	clientState, ok := clientStateI.(*ClientState)
	if !ok {
		return nil, false
	}
	return clientState, true
}
