package tendermint_test

import (
	"strings"
	"time"

	"github.com/cometbft/cometbft/crypto/tmhash"
	ics23 "github.com/cosmos/ics23/go"

	clienttypes "github.com/cosmos/ibc-verify/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-verify/modules/core/23-commitment/types"
	"github.com/cosmos/ibc-verify/modules/core/exported"
	mock "github.com/cosmos/ibc-verify/modules/light-clients/00-mock"
	ibctm "github.com/cosmos/ibc-verify/modules/light-clients/07-tendermint"
)

func (suite *TendermintTestSuite) TestValidate() {
	testCases := []struct {
		name        string
		clientState *ibctm.ClientState
		expPass     bool
	}{
		{
			name:        "valid client",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     true,
		},
		{
			name:        "valid client with empty upgrade path",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), nil),
			expPass:     true,
		},
		{
			name:        "chainID is alphanumeric with maximum length",
			clientState: ibctm.NewClientState(strings.Repeat("a", 50), ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(0, 1), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     true,
		},
		{
			name:        "valid durations from counterparty staking parameters",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, 64000*time.Second, 128000*time.Second, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     true,
		},
		{
			name:        "invalid chainID",
			clientState: ibctm.NewClientState("  ", ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "chainID is above maximum length",
			clientState: ibctm.NewClientState(strings.Repeat("a", 51), ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(0, 1), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "invalid zero trust level",
			clientState: ibctm.NewClientState(chainID, ibctm.Fraction{Numerator: 0, Denominator: 1}, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "invalid trust level larger than one",
			clientState: ibctm.NewClientState(chainID, ibctm.Fraction{Numerator: 2, Denominator: 1}, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "invalid zero trusting period",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, 0, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "invalid negative trusting period",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, -1, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "invalid zero unbonding period",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, 0, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "invalid zero max clock drift",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, 0, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "trusting period not less than unbonding period",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, 128000*time.Second, 64000*time.Second, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "trusting period equal to unbonding period",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, ubdPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "latest height revision number must match chain id revision number",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(0, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "invalid zero revision height",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.Height{RevisionNumber: 1}, commitmenttypes.GetSDKSpecs(), upgradePath),
			expPass:     false,
		},
		{
			name:        "proof specs is nil",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), nil, upgradePath),
			expPass:     false,
		},
		{
			name:        "proof specs contains nil",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), []*ics23.ProofSpec{ics23.TendermintSpec, nil}, upgradePath),
			expPass:     false,
		},
		{
			name:        "upgrade path contains empty key",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), []string{"upgrade", ""}),
			expPass:     false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			err := tc.clientState.Validate()
			if tc.expPass {
				suite.Require().NoError(err, tc.name)
			} else {
				suite.Require().Error(err, tc.name)
			}
		})
	}
}

func (suite *TendermintTestSuite) TestIsExpired() {
	clientState := ibctm.NewClientState(
		chainID, ibctm.DefaultTrustLevel, 60000*time.Second, ubdPeriod, maxClockDrift,
		clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath,
	)

	latestTimestamp := suite.now

	testCases := []struct {
		name       string
		now        time.Time
		expExpired bool
	}{
		{"within trusting period", latestTimestamp.Add(50000 * time.Second), false},
		{"at trusting period boundary", latestTimestamp.Add(60000 * time.Second), true},
		{"past trusting period", latestTimestamp.Add(70000 * time.Second), true},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.Require().Equal(tc.expExpired, clientState.IsExpired(latestTimestamp, tc.now))
		})
	}
}

func (suite *TendermintTestSuite) TestExpired() {
	clientState := ibctm.NewClientState(
		chainID, ibctm.DefaultTrustLevel, 60000*time.Second, ubdPeriod, maxClockDrift,
		clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath,
	)

	suite.Require().False(clientState.Expired(50000 * time.Second))
	// the elapsed boundary is exclusive
	suite.Require().False(clientState.Expired(60000 * time.Second))
	suite.Require().True(clientState.Expired(60000*time.Second + time.Nanosecond))
	suite.Require().True(clientState.Expired(70000 * time.Second))
}

func (suite *TendermintTestSuite) TestZeroCustomFields() {
	clientState := ibctm.NewClientState(
		chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift,
		clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath,
	)

	zeroed := clientState.ZeroCustomFields()

	suite.Require().Equal(clientState.ChainId, zeroed.ChainId)
	suite.Require().Equal(clientState.UnbondingPeriod, zeroed.UnbondingPeriod)
	suite.Require().Equal(clientState.LatestHeight, zeroed.LatestHeight)
	suite.Require().Equal(clientState.ProofSpecs, zeroed.ProofSpecs)
	suite.Require().Equal(clientState.UpgradePath, zeroed.UpgradePath)

	suite.Require().Zero(zeroed.TrustLevel)
	suite.Require().Zero(zeroed.TrustingPeriod)
	suite.Require().Zero(zeroed.MaxClockDrift)
	suite.Require().True(zeroed.FrozenHeight.IsZero())
}

func (suite *TendermintTestSuite) TestInitialize() {
	consensusState := ibctm.NewConsensusState(
		suite.now, commitmenttypes.NewMerkleRoot(tmhash.Sum([]byte("app_hash"))), suite.valSet.Hash(),
	)

	testCases := []struct {
		name           string
		clientState    exported.ClientState
		consensusState exported.ConsensusState
		expPass        bool
	}{
		{
			"valid initialization",
			ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			consensusState,
			true,
		},
		{
			"invalid client state",
			ibctm.NewClientState("  ", ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			consensusState,
			false,
		},
		{
			"invalid client state type",
			&mock.ClientState{LatestHeight: clienttypes.NewHeight(1, 5)},
			consensusState,
			false,
		},
		{
			"invalid consensus state type",
			ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, maxClockDrift, clienttypes.NewHeight(1, 5), commitmenttypes.GetSDKSpecs(), upgradePath),
			&mock.ConsensusState{Timestamp: uint64(suite.now.UnixNano())},
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			newClientID := "07-tendermint-1"
			err := suite.lcm.Initialize(suite.ctx(suite.now), newClientID, tc.clientState, tc.consensusState)

			if !tc.expPass {
				suite.Require().Error(err)
				return
			}

			suite.Require().NoError(err)

			clientStore := suite.provider.ClientStore(newClientID)
			storedClientState, found := clientStore.GetClientState()
			suite.Require().True(found)
			suite.Require().Equal(tc.clientState, storedClientState)

			storedConsState, found := clientStore.GetConsensusState(clienttypes.NewHeight(1, 5))
			suite.Require().True(found)
			suite.Require().Equal(tc.consensusState, storedConsState)

			_, found = clientStore.GetProcessedTime(clienttypes.NewHeight(1, 5))
			suite.Require().True(found)
			_, found = clientStore.GetProcessedHeight(clienttypes.NewHeight(1, 5))
			suite.Require().True(found)
		})
	}
}

func (suite *TendermintTestSuite) TestStatus() {
	testCases := []struct {
		name      string
		malleate  func()
		hostTime  time.Time
		expStatus exported.Status
	}{
		{
			"client is active",
			func() {},
			suite.now.Add(time.Minute),
			exported.Active,
		},
		{
			"client is frozen",
			func() {
				clientStore := suite.provider.ClientStore(clientID)
				frozen := *suite.clientState
				frozen.FrozenHeight = clienttypes.NewHeight(0, 1)
				clientStore.SetClientState(&frozen)
			},
			suite.now.Add(time.Minute),
			exported.Frozen,
		},
		{
			"client is expired",
			func() {},
			suite.now.Add(trustingPeriod),
			exported.Expired,
		},
		{
			"client has no consensus state for latest height",
			func() {
				clientStore := suite.provider.ClientStore(clientID)
				clientStore.DeleteConsensusState(suite.trustedHeight)
			},
			suite.now.Add(time.Minute),
			exported.Expired,
		},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.SetupTest()

			tc.malleate()

			status := suite.lcm.Status(suite.ctx(tc.hostTime), clientID)
			suite.Require().Equal(tc.expStatus, status)
		})
	}
}

func (suite *TendermintTestSuite) TestStatusUnknownClient() {
	status := suite.lcm.Status(suite.ctx(suite.now), "07-tendermint-999")
	suite.Require().Equal(exported.Unknown, status)
}

func (suite *TendermintTestSuite) TestTimestampAtHeight() {
	timestamp, err := suite.lcm.TimestampAtHeight(suite.ctx(suite.now), clientID, suite.trustedHeight)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(suite.now.UnixNano()), timestamp)

	_, err = suite.lcm.TimestampAtHeight(suite.ctx(suite.now), clientID, clienttypes.NewHeight(1, 100))
	suite.Require().ErrorIs(err, clienttypes.ErrConsensusStateNotFound)

	_, err = suite.lcm.TimestampAtHeight(suite.ctx(suite.now), "07-tendermint-999", suite.trustedHeight)
	suite.Require().ErrorIs(err, clienttypes.ErrClientNotFound)
}

func (suite *TendermintTestSuite) TestLatestHeight() {
	height := suite.lcm.LatestHeight(suite.ctx(suite.now), clientID)
	suite.Require().Equal(suite.trustedHeight, height)

	height = suite.lcm.LatestHeight(suite.ctx(suite.now), "07-tendermint-999")
	suite.Require().True(height.IsZero())
}
