package tendermint_test

import (
	"time"

	clienttypes "github.com/cosmos/ibc-verify/modules/core/02-client/types"
	"github.com/cosmos/ibc-verify/modules/core/exported"
	ibctm "github.com/cosmos/ibc-verify/modules/light-clients/07-tendermint"
)

func (suite *TendermintTestSuite) TestVerifyHeader() {
	var (
		header   *ibctm.Header
		hostTime time.Time
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: adjacent update",
			func() {},
			nil,
		},
		{
			"success: non-adjacent update",
			func() {
				header = suite.createHeader(chainID, 7, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
			},
			nil,
		},
		{
			"failure: client is frozen",
			func() {
				clientStore := suite.provider.ClientStore(clientID)
				clientStateI, found := clientStore.GetClientState()
				suite.Require().True(found)

				frozen := *(clientStateI.(*ibctm.ClientState))
				frozen.FrozenHeight = ibctm.FrozenHeight
				clientStore.SetClientState(&frozen)
			},
			clienttypes.ErrClientFrozen,
		},
		{
			"failure: trusted consensus state not found",
			func() {
				header.TrustedHeight = clienttypes.NewHeight(1, 3)
			},
			clienttypes.ErrConsensusStateNotFound,
		},
		{
			"failure: trusted validators do not hash to consensus state next validators",
			func() {
				header.TrustedValidators = suite.altValSet
			},
			ibctm.ErrInvalidValidatorSet,
		},
		{
			"failure: header revision does not match trusted height revision",
			func() {
				header = suite.createHeader("testchain-2", 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
			},
			ibctm.ErrInvalidHeaderHeight,
		},
		{
			"failure: header height is equal to trusted height",
			func() {
				header = suite.createHeader(chainID, int64(suite.trustedHeight.RevisionHeight), suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
			},
			clienttypes.ErrInvalidHeader,
		},
		{
			"failure: trusting period has passed since last client timestamp",
			func() {
				hostTime = suite.now.Add(trustingPeriod).Add(time.Second)
			},
			ibctm.ErrInvalidHeader,
		},
		{
			"failure: header timestamp is not past last client timestamp",
			func() {
				header = suite.createHeader(chainID, 6, suite.trustedHeight, suite.now.Add(-time.Hour), suite.valSet, suite.valSet, suite.signers)
			},
			ibctm.ErrInvalidHeader,
		},
		{
			"failure: header timestamp is past the max clock drift",
			func() {
				header = suite.createHeader(chainID, 6, suite.trustedHeight, suite.hostTime().Add(maxClockDrift).Add(time.Minute), suite.valSet, suite.valSet, suite.signers)
			},
			ibctm.ErrInvalidHeader,
		},
		{
			"failure: untrusted validator set signed by insufficient trusted voting power",
			func() {
				header = suite.createHeader(chainID, 7, suite.trustedHeight, suite.headerTime(), suite.altValSet, suite.valSet, suite.altSigners)
			},
			ibctm.ErrNotEnoughVotingPower,
		},
		{
			"failure: adjacent update with validator set mismatching next validators hash",
			func() {
				header = suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.altValSet, suite.valSet, suite.altSigners)
			},
			ibctm.ErrInvalidHeader,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			header = suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
			hostTime = suite.hostTime()

			tc.malleate()

			err := suite.lcm.VerifyClientMessage(suite.ctx(hostTime), clientID, header)
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *TendermintTestSuite) TestVerifyClientMessageInvalidType() {
	err := suite.lcm.VerifyClientMessage(suite.ctx(suite.hostTime()), clientID, nil)
	suite.Require().ErrorIs(err, clienttypes.ErrInvalidClientType)
}

func (suite *TendermintTestSuite) TestUpdateState() {
	suite.Run("update to a new latest height", func() {
		suite.SetupTest()
		header := suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
		ctx := suite.ctx(suite.hostTime())

		err := suite.lcm.VerifyClientMessage(ctx, clientID, header)
		suite.Require().NoError(err)

		heights := suite.lcm.UpdateState(ctx, clientID, header)
		suite.Require().Equal([]exported.Height{clienttypes.NewHeight(1, 6)}, heights)
		suite.Require().Equal(clienttypes.NewHeight(1, 6), suite.lcm.LatestHeight(ctx, clientID))

		clientStore := suite.provider.ClientStore(clientID)
		consState, found := clientStore.GetConsensusState(clienttypes.NewHeight(1, 6))
		suite.Require().True(found)
		suite.Require().Equal(header.ConsensusState(), consState)

		processedTime, found := clientStore.GetProcessedTime(clienttypes.NewHeight(1, 6))
		suite.Require().True(found)
		suite.Require().Equal(uint64(suite.hostTime().UnixNano()), processedTime)

		processedHeight, found := clientStore.GetProcessedHeight(clienttypes.NewHeight(1, 6))
		suite.Require().True(found)
		suite.Require().Equal(clienttypes.NewHeight(0, 10), processedHeight)
	})

	suite.Run("duplicate update is a noop", func() {
		suite.SetupTest()
		header := suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
		ctx := suite.ctx(suite.hostTime())

		heights := suite.lcm.UpdateState(ctx, clientID, header)
		suite.Require().Equal([]exported.Height{clienttypes.NewHeight(1, 6)}, heights)

		heights = suite.lcm.UpdateState(ctx, clientID, header)
		suite.Require().Equal([]exported.Height{clienttypes.NewHeight(1, 6)}, heights)
		suite.Require().Equal(clienttypes.NewHeight(1, 6), suite.lcm.LatestHeight(ctx, clientID))
	})

	suite.Run("update to a past height does not regress the latest height", func() {
		suite.SetupTest()
		ctx := suite.ctx(suite.hostTime())

		header := suite.createHeader(chainID, 8, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
		suite.lcm.UpdateState(ctx, clientID, header)
		suite.Require().Equal(clienttypes.NewHeight(1, 8), suite.lcm.LatestHeight(ctx, clientID))

		// fill in a height skipped during bisection
		header = suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
		heights := suite.lcm.UpdateState(ctx, clientID, header)
		suite.Require().Equal([]exported.Height{clienttypes.NewHeight(1, 6)}, heights)
		suite.Require().Equal(clienttypes.NewHeight(1, 8), suite.lcm.LatestHeight(ctx, clientID))

		clientStore := suite.provider.ClientStore(clientID)
		_, found := clientStore.GetConsensusState(clienttypes.NewHeight(1, 6))
		suite.Require().True(found)
	})

	suite.Run("misbehaviour message is a noop", func() {
		suite.SetupTest()
		ctx := suite.ctx(suite.hostTime())

		misbehaviour := &ibctm.Misbehaviour{
			ClientId: clientID,
			Header1:  suite.createForkHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers),
			Header2:  suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers),
		}

		heights := suite.lcm.UpdateState(ctx, clientID, misbehaviour)
		suite.Require().Empty(heights)
		suite.Require().Equal(suite.trustedHeight, suite.lcm.LatestHeight(ctx, clientID))
	})

	suite.Run("expired oldest consensus state is pruned", func() {
		suite.SetupTest()
		ctx := suite.ctx(suite.hostTime())

		expiredHeight := clienttypes.NewHeight(1, 1)
		expiredConsState := ibctm.NewConsensusState(
			suite.now.Add(-trustingPeriod).Add(-time.Hour), suite.consensusState.Root, suite.valSet.Hash(),
		)

		clientStore := suite.provider.ClientStore(clientID)
		clientStore.SetConsensusState(expiredHeight, expiredConsState)
		clientStore.SetProcessedTime(expiredHeight, uint64(suite.now.UnixNano()))
		clientStore.SetProcessedHeight(expiredHeight, clienttypes.NewHeight(0, 1))

		header := suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
		suite.lcm.UpdateState(ctx, clientID, header)

		_, found := clientStore.GetConsensusState(expiredHeight)
		suite.Require().False(found)
		_, found = clientStore.GetProcessedTime(expiredHeight)
		suite.Require().False(found)
		_, found = clientStore.GetProcessedHeight(expiredHeight)
		suite.Require().False(found)

		// the non-expired consensus states survive
		_, found = clientStore.GetConsensusState(suite.trustedHeight)
		suite.Require().True(found)
		_, found = clientStore.GetConsensusState(clienttypes.NewHeight(1, 6))
		suite.Require().True(found)
	})

	suite.Run("panics when client is not found", func() {
		suite.SetupTest()
		header := suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)

		suite.Require().Panics(func() {
			suite.lcm.UpdateState(suite.ctx(suite.hostTime()), "07-tendermint-42", header)
		})
	})
}
