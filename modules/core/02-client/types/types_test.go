package types_test

import (
	"time"

	"github.com/cosmos/ibc-verify/modules/core/exported"
)

// foreignHeight implements exported.Height with a type other than the
// concrete Height, to exercise the guards against foreign implementations.
type foreignHeight struct{}

func (foreignHeight) IsZero() bool                       { return true }
func (foreignHeight) LT(exported.Height) bool            { return false }
func (foreignHeight) LTE(exported.Height) bool           { return false }
func (foreignHeight) EQ(exported.Height) bool            { return false }
func (foreignHeight) GT(exported.Height) bool            { return false }
func (foreignHeight) GTE(exported.Height) bool           { return false }
func (foreignHeight) GetRevisionNumber() uint64          { return 0 }
func (foreignHeight) GetRevisionHeight() uint64          { return 0 }
func (foreignHeight) Increment() exported.Height         { return foreignHeight{} }
func (foreignHeight) Decrement() (exported.Height, bool) { return foreignHeight{}, false }
func (foreignHeight) String() string                     { return "foreign" }

// hostContext is a fixed host view of the current block time and height.
type hostContext struct {
	timestamp time.Time
	height    exported.Height
}

func (c hostContext) HostTimestamp() time.Time    { return c.timestamp }
func (c hostContext) HostHeight() exported.Height { return c.height }
