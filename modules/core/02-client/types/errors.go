package types

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName defines the client submodule codespace
const SubModuleName = "client"

// IBC client sentinel errors
var (
	ErrClientExists           = errorsmod.Register(SubModuleName, 2, "light client already exists")
	ErrInvalidClient          = errorsmod.Register(SubModuleName, 3, "light client is invalid")
	ErrClientNotFound         = errorsmod.Register(SubModuleName, 4, "light client not found")
	ErrClientFrozen           = errorsmod.Register(SubModuleName, 5, "light client is frozen due to misbehaviour")
	ErrInvalidConsensus       = errorsmod.Register(SubModuleName, 6, "invalid consensus state")
	ErrConsensusStateNotFound = errorsmod.Register(SubModuleName, 7, "consensus state not found")
	ErrInvalidHeight          = errorsmod.Register(SubModuleName, 8, "invalid height")
	ErrZeroHeight             = errorsmod.Register(SubModuleName, 9, "zero height")
	ErrInvalidClientType      = errorsmod.Register(SubModuleName, 10, "invalid client type")
	ErrInvalidHeader          = errorsmod.Register(SubModuleName, 11, "invalid client header")
	ErrInvalidMisbehaviour    = errorsmod.Register(SubModuleName, 12, "invalid light client misbehaviour")
	ErrInsufficientHeight     = errorsmod.Register(SubModuleName, 13, "height is less than proof height")
	ErrRouteNotFound          = errorsmod.Register(SubModuleName, 14, "light client module route not found")
	ErrInvalidChainID         = errorsmod.Register(SubModuleName, 15, "invalid chain-id")
)
