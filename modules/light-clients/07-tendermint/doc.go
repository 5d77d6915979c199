/*
Package tendermint implements a concrete LightClientModule, ClientState,
ConsensusState, Header and Misbehaviour for the Tendermint consensus algorithm.
This implementation is based off the ICS 07 specification
(https://github.com/cosmos/ibc/tree/main/spec/client/ics-007-tendermint-client)
*/
package tendermint
