package exported

import (
	"time"
)

// Status represents the status of a client
type Status string

const (
	// ModuleName is the shared codespace for core verification errors
	ModuleName = "ibc"

	// Tendermint is used to indicate that the client uses the Tendermint Consensus Algorithm.
	Tendermint string = "07-tendermint"

	// Mock is a dummy client kind used by host chains for wiring tests.
	Mock string = "00-mock"

	// Active is a status type of a client. An active client is allowed to be used.
	Active Status = "Active"

	// Frozen is a status type of a client. A frozen client is not allowed to be used.
	Frozen Status = "Frozen"

	// Expired is a status type of a client. An expired client is not allowed to be used.
	Expired Status = "Expired"

	// Unknown indicates there was an error in determining the status of a client.
	Unknown Status = "Unknown"
)

// String returns the string representation of a client status.
func (s Status) String() string {
	return string(s)
}

// ClientState defines the required common functions for light clients.
type ClientState interface {
	ClientType() string
	GetLatestHeight() Height
	Validate() error
}

// ConsensusState is the per-height snapshot of a counterparty chain's
// consensus, keyed by Height in the client store.
type ConsensusState interface {
	ClientType() string

	// GetRoot returns the commitment root of the consensus state,
	// which is used for key-value pair verification.
	GetRoot() Root

	// GetTimestamp returns the timestamp (in nanoseconds) of the consensus state
	GetTimestamp() uint64

	ValidateBasic() error
}

// ClientMessage is an interface used to update an IBC client.
// The update may be done by a single header, a batch of headers, misbehaviour, or any type which when verified produces
// a change to state of the IBC client
type ClientMessage interface {
	ClientType() string
	ValidateBasic() error
}

// Height is a wrapper interface over clienttypes.Height
// all clients must use the concrete implementation in types
type Height interface {
	IsZero() bool
	LT(Height) bool
	LTE(Height) bool
	EQ(Height) bool
	GT(Height) bool
	GTE(Height) bool
	GetRevisionNumber() uint64
	GetRevisionHeight() uint64
	Increment() Height
	Decrement() (Height, bool)
	String() string
}

// HostContext supplies the host chain's view of "now": its current block
// timestamp and height. It replaces direct access to the host's block
// context so the core stays a pure library.
type HostContext interface {
	HostTimestamp() time.Time
	HostHeight() Height
}

// ClientStore is the persistence surface the host supplies for a single
// client. Consensus states are append-only except for pruning of expired
// entries; the client state slot is overwritten on update and freeze.
//
// The host is responsible for serializing concurrent calls touching the
// same client id so that the freeze transition is linearizable.
type ClientStore interface {
	GetClientState() (ClientState, bool)
	SetClientState(clientState ClientState)

	GetConsensusState(height Height) (ConsensusState, bool)
	SetConsensusState(height Height, consensusState ConsensusState)
	DeleteConsensusState(height Height)

	// IterateConsensusStates visits stored consensus states in ascending
	// height order until cb returns true.
	IterateConsensusStates(cb func(height Height, consensusState ConsensusState) bool)

	// Processing metadata recorded on every successful update, consumed by
	// connection/channel delay-period checks.
	GetProcessedTime(height Height) (uint64, bool)
	SetProcessedTime(height Height, timeNs uint64)
	GetProcessedHeight(height Height) (Height, bool)
	SetProcessedHeight(height Height, processedHeight Height)
	DeleteConsensusMetadata(height Height)
}

// LightClientModule is the per-client-kind entry point consumed by a host
// chain's message handlers. Implementations are enumerated in the client
// Router; the client-type tag carried alongside encoded blobs selects one.
type LightClientModule interface {
	// Initialize performs basic validation and persists the initial client
	// and consensus state in the provided client store.
	Initialize(ctx HostContext, clientID string, clientState ClientState, consensusState ConsensusState) error

	// VerifyClientMessage must verify a ClientMessage. A ClientMessage could be a Header, Misbehaviour, or batch update.
	// Calls to CheckForMisbehaviour, UpdateState, and UpdateStateOnMisbehaviour
	// will assume that the content of the ClientMessage has been verified and can be trusted. An error should be returned
	// if the ClientMessage fails to verify.
	VerifyClientMessage(ctx HostContext, clientID string, clientMsg ClientMessage) error

	// CheckForMisbehaviour checks for evidence of a misbehaviour in Header or Misbehaviour type. It assumes the ClientMessage
	// has already been verified.
	CheckForMisbehaviour(ctx HostContext, clientID string, clientMsg ClientMessage) bool

	// UpdateStateOnMisbehaviour should perform appropriate state changes on a client state given that misbehaviour has been detected and verified
	UpdateStateOnMisbehaviour(ctx HostContext, clientID string, clientMsg ClientMessage)

	// UpdateState updates and stores as necessary any associated information for an IBC client, such as the ClientState and corresponding ConsensusState.
	// Upon successful update, a list of consensus heights is returned. It assumes the ClientMessage has already been verified.
	UpdateState(ctx HostContext, clientID string, clientMsg ClientMessage) []Height

	// VerifyMembership is a generic proof verification method which verifies a proof of the existence of a value at a given CommitmentPath at the specified height.
	// The caller is expected to construct the full CommitmentPath from a CommitmentPrefix and a standardized path (as defined in ICS 24).
	VerifyMembership(
		ctx HostContext,
		clientID string,
		height Height,
		delayTimePeriod uint64,
		delayBlockPeriod uint64,
		proof Proof,
		path Path,
		value []byte,
	) error

	// VerifyNonMembership is a generic proof verification method which verifies the absence of a given CommitmentPath at a specified height.
	// The caller is expected to construct the full CommitmentPath from a CommitmentPrefix and a standardized path (as defined in ICS 24).
	VerifyNonMembership(
		ctx HostContext,
		clientID string,
		height Height,
		delayTimePeriod uint64,
		delayBlockPeriod uint64,
		proof Proof,
		path Path,
	) error

	// Status must return the status of the client. Only Active clients are allowed to process packets.
	Status(ctx HostContext, clientID string) Status

	// LatestHeight returns the latest height for the client state for the given client identifier.
	LatestHeight(ctx HostContext, clientID string) Height

	// TimestampAtHeight must return the timestamp for the consensus state associated with the provided height.
	TimestampAtHeight(ctx HostContext, clientID string, height Height) (uint64, error)
}
