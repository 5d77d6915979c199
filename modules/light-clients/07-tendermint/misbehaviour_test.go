package tendermint_test

import (
	"time"

	cmttypes "github.com/cometbft/cometbft/types"

	clienttypes "github.com/cosmos/ibc-verify/modules/core/02-client/types"
	"github.com/cosmos/ibc-verify/modules/core/exported"
	ibctm "github.com/cosmos/ibc-verify/modules/light-clients/07-tendermint"
)

func (suite *TendermintTestSuite) TestMisbehaviourGetTime() {
	header1 := suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime().Add(time.Minute), suite.valSet, suite.valSet, suite.signers)
	header2 := suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)

	misbehaviour := ibctm.NewMisbehaviour(clientID, header1, header2)
	suite.Require().Equal(suite.headerTime().Add(time.Minute), misbehaviour.GetTime())

	misbehaviour = ibctm.NewMisbehaviour(clientID, header2, header1)
	suite.Require().Equal(suite.headerTime().Add(time.Minute), misbehaviour.GetTime())
}

func (suite *TendermintTestSuite) TestMisbehaviourClientType() {
	misbehaviour := ibctm.NewMisbehaviour(clientID, nil, nil)
	suite.Require().Equal(exported.Tendermint, misbehaviour.ClientType())
}

func (suite *TendermintTestSuite) TestMisbehaviourValidateBasic() {
	var misbehaviour *ibctm.Misbehaviour

	testCases := []struct {
		name     string
		malleate func()
		expErr   bool
	}{
		{"valid fork misbehaviour", func() {}, false},
		{
			"valid time misbehaviour: Header1 at greater height, earlier time",
			func() {
				misbehaviour.Header1 = suite.createHeader(chainID, 8, suite.trustedHeight, suite.headerTime().Add(-time.Minute), suite.valSet, suite.valSet, suite.signers)
			},
			false,
		},
		{
			"header 1 is nil",
			func() {
				misbehaviour.Header1 = nil
			},
			true,
		},
		{
			"header 2 is nil",
			func() {
				misbehaviour.Header2 = nil
			},
			true,
		},
		{
			"header 1 has zero trusted revision height",
			func() {
				misbehaviour.Header1.TrustedHeight = clienttypes.NewHeight(1, 0)
			},
			true,
		},
		{
			"header 2 has zero trusted revision height",
			func() {
				misbehaviour.Header2.TrustedHeight = clienttypes.NewHeight(1, 0)
			},
			true,
		},
		{
			"header 1 has nil trusted validators",
			func() {
				misbehaviour.Header1.TrustedValidators = nil
			},
			true,
		},
		{
			"header 2 has nil trusted validators",
			func() {
				misbehaviour.Header2.TrustedValidators = nil
			},
			true,
		},
		{
			"chain IDs do not match",
			func() {
				misbehaviour.Header1 = suite.createForkHeader("testchain-2", 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
			},
			true,
		},
		{
			"empty client ID",
			func() {
				misbehaviour.ClientId = "  "
			},
			true,
		},
		{
			"header 1 fails basic validation",
			func() {
				misbehaviour.Header1.ValidatorSet = suite.altValSet
			},
			true,
		},
		{
			"header 2 fails basic validation",
			func() {
				misbehaviour.Header2.ValidatorSet = suite.altValSet
			},
			true,
		},
		{
			"header 1 height is less than header 2 height",
			func() {
				misbehaviour.Header1 = suite.createForkHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
				misbehaviour.Header2 = suite.createHeader(chainID, 7, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers)
			},
			true,
		},
		{
			"header 1 commit carries insufficient voting power",
			func() {
				for i := range misbehaviour.Header1.SignedHeader.Commit.Signatures {
					misbehaviour.Header1.SignedHeader.Commit.Signatures[i] = cmttypes.NewCommitSigAbsent()
				}
			},
			true,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			misbehaviour = ibctm.NewMisbehaviour(
				clientID,
				suite.createForkHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers),
				suite.createHeader(chainID, 6, suite.trustedHeight, suite.headerTime(), suite.valSet, suite.valSet, suite.signers),
			)

			tc.malleate()

			err := misbehaviour.ValidateBasic()
			if tc.expErr {
				suite.Require().Error(err)
			} else {
				suite.Require().NoError(err)
			}
		})
	}
}
