package types

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName defines the channel submodule codespace
const SubModuleName = "channel"

// IBC channel sentinel errors
var (
	ErrInvalidPacket          = errorsmod.Register(SubModuleName, 2, "invalid packet")
	ErrInvalidTimeout         = errorsmod.Register(SubModuleName, 3, "invalid packet timeout")
	ErrInvalidAcknowledgement = errorsmod.Register(SubModuleName, 4, "invalid acknowledgement")
)
