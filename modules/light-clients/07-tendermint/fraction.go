package tendermint

import (
	cmtmath "github.com/cometbft/cometbft/libs/math"
	"github.com/cometbft/cometbft/light"

	errorsmod "cosmossdk.io/errors"
)

// DefaultTrustLevel is the tendermint light client default trust level
var DefaultTrustLevel = NewFractionFromTm(light.DefaultTrustLevel)

// Fraction defines the protobuf-free analogue of the Tendermint trust
// fraction: the minimum portion of trusted voting power that must sign a new
// untrusted header.
type Fraction struct {
	Numerator   uint64
	Denominator uint64
}

// NewFraction returns a validated Fraction. The denominator must be non-zero
// and the value must not exceed 1.
func NewFraction(numerator, denominator uint64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, errorsmod.Wrap(ErrInvalidTrustLevel, "denominator cannot be zero")
	}
	if numerator > denominator {
		return Fraction{}, errorsmod.Wrapf(ErrInvalidTrustLevel, "trust level cannot exceed 1: got %d/%d", numerator, denominator)
	}
	return Fraction{
		Numerator:   numerator,
		Denominator: denominator,
	}, nil
}

// NewFractionFromTm returns a new Fraction instance from a cmtmath.Fraction
func NewFractionFromTm(f cmtmath.Fraction) Fraction {
	return Fraction{
		Numerator:   f.Numerator,
		Denominator: f.Denominator,
	}
}

// ToTendermint converts Fraction to cmtmath.Fraction
func (f Fraction) ToTendermint() cmtmath.Fraction {
	return cmtmath.Fraction{
		Numerator:   f.Numerator,
		Denominator: f.Denominator,
	}
}

// IsZero returns true if the fraction is the degenerate zero threshold.
func (f Fraction) IsZero() bool {
	return f.Numerator == 0
}
