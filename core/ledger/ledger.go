// Package ledger exposes header data of the ledger a program executes in.
package ledger

import (
	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

// Sequence returns the sequence number of the current ledger.
func Sequence() (uint32, error) {
	code := host.GetLedgerSqn()
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return uint32(code), nil
}

// ParentTime returns the close time of the parent ledger, in seconds since
// the Ripple epoch.
func ParentTime() (uint32, error) {
	code := host.GetParentLedgerTime()
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return uint32(code), nil
}

// ParentHash returns the hash of the parent ledger.
func ParentHash() (types.Hash256, error) {
	var h types.Hash256
	code := host.GetParentLedgerHash(h[:])
	if err := host.CheckCodeExpectedBytes(code, types.Hash256Size); err != nil {
		return types.Hash256{}, err
	}
	return h, nil
}

// BaseFee returns the reference transaction cost in drops.
func BaseFee() (uint32, error) {
	code := host.GetBaseFee()
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return uint32(code), nil
}

// AmendmentEnabled reports whether the amendment with the given 32-byte id
// is active.
func AmendmentEnabled(amendment types.Hash256) (bool, error) {
	code := host.AmendmentEnabled(amendment[:])
	if code < 0 {
		return false, host.ErrorFromCode(code)
	}
	return code != 0, nil
}
