package tendermint

import (
	"github.com/cosmos/ibc-verify/modules/core/exported"
)

// getClientState retrieves the client state from the client store and asserts
// it is of tendermint type.
func getClientState(store exported.ClientStore) (*ClientState, bool) {
	clientStateI, found := store.GetClientState()
	if !found {
		return nil, false
	}

	clientState, ok := clientStateI.(*ClientState)
	if !ok {
		return nil, false
	}
	return clientState, true
}

// setClientState stores the client state
func setClientState(clientStore exported.ClientStore, clientState *ClientState) {
	clientStore.SetClientState(clientState)
}

// GetConsensusState retrieves the consensus state from the client store and
// asserts it is of tendermint type.
func GetConsensusState(store exported.ClientStore, height exported.Height) (*ConsensusState, bool) {
	consensusStateI, found := store.GetConsensusState(height)
	if !found {
		return nil, false
	}

	consensusState, ok := consensusStateI.(*ConsensusState)
	if !ok {
		return nil, false
	}
	return consensusState, true
}

// setConsensusState stores the consensus state at the given height.
func setConsensusState(clientStore exported.ClientStore, consensusState *ConsensusState, height exported.Height) {
	clientStore.SetConsensusState(height, consensusState)
}

// deleteConsensusState deletes the consensus state at the given height
func deleteConsensusState(clientStore exported.ClientStore, height exported.Height) {
	clientStore.DeleteConsensusState(height)
}

// GetProcessedTime gets the time (in nanoseconds) at which this chain received and processed a tendermint header.
// This is used to validate that a received packet has passed the time delay period.
func GetProcessedTime(clientStore exported.ClientStore, height exported.Height) (uint64, bool) {
	return clientStore.GetProcessedTime(height)
}

// GetProcessedHeight gets the height at which this chain received and processed a tendermint header.
// This is used to validate that a received packet has passed the block delay period.
func GetProcessedHeight(clientStore exported.ClientStore, height exported.Height) (exported.Height, bool) {
	return clientStore.GetProcessedHeight(height)
}

// setConsensusMetadata sets the host time as processed time and the host
// height as processed height for the consensus state at the given height.
func setConsensusMetadata(ctx exported.HostContext, clientStore exported.ClientStore, height exported.Height) {
	setConsensusMetadataWithValues(clientStore, height, ctx.HostHeight(), uint64(ctx.HostTimestamp().UnixNano()))
}

// setConsensusMetadataWithValues sets the consensus metadata with the provided values
func setConsensusMetadataWithValues(
	clientStore exported.ClientStore, height,
	processedHeight exported.Height,
	processedTime uint64,
) {
	clientStore.SetProcessedTime(height, processedTime)
	clientStore.SetProcessedHeight(height, processedHeight)
}

// deleteConsensusMetadata deletes the metadata stored for a particular consensus state.
func deleteConsensusMetadata(clientStore exported.ClientStore, height exported.Height) {
	clientStore.DeleteConsensusMetadata(height)
}

// GetPreviousConsensusState returns the highest consensus state that is lower than the given height.
func GetPreviousConsensusState(clientStore exported.ClientStore, height exported.Height) (*ConsensusState, bool) {
	var prevCons *ConsensusState

	clientStore.IterateConsensusStates(func(h exported.Height, consensusState exported.ConsensusState) bool {
		if h.GTE(height) {
			return true
		}
		if tmConsState, ok := consensusState.(*ConsensusState); ok {
			prevCons = tmConsState
		}
		return false
	})

	return prevCons, prevCons != nil
}

// GetNextConsensusState returns the lowest consensus state that is larger than the given height.
func GetNextConsensusState(clientStore exported.ClientStore, height exported.Height) (*ConsensusState, bool) {
	var nextCons *ConsensusState

	clientStore.IterateConsensusStates(func(h exported.Height, consensusState exported.ConsensusState) bool {
		if !h.GT(height) {
			return false
		}
		if tmConsState, ok := consensusState.(*ConsensusState); ok {
			nextCons = tmConsState
		}
		return true
	})

	return nextCons, nextCons != nil
}
