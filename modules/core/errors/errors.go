package errors

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/ibc-verify/modules/core/exported"
)

const codespace = exported.ModuleName

var (
	// ErrInvalidRequest defines an error where the request contains invalid data.
	ErrInvalidRequest = errorsmod.Register(codespace, 2, "invalid request")

	// ErrInvalidHeight defines an error for an invalid height
	ErrInvalidHeight = errorsmod.Register(codespace, 3, "invalid height")

	// ErrInvalidType defines an error for an invalid type
	ErrInvalidType = errorsmod.Register(codespace, 4, "invalid type")

	// ErrNotFound defines an error when requested entity doesn't exist in the state.
	ErrNotFound = errorsmod.Register(codespace, 5, "entity does not exist")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = errorsmod.Register(codespace, 111222, "panic")
)
