package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// AbortWithMessage calls `runtime.Log` with passed message
// and calls `ABORT` opcode.
func AbortWithMessage(msg string) {
	runtime.Log(msg)
	util.Abort()
}

// AcceptGASOnly aborts execution unless the calling contract is the native
// GAS contract. It is used in onNEP17Payment handlers.
func AcceptGASOnly() {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		AbortWithMessage("only GAS can be accepted for deposit")
	}
}

// TransferFrom moves amount of GAS from the account to the executing contract.
// The account witness must be valid in the GAS contract context, signer scope
// has to allow it explicitly when the contract is not called by entry.
func TransferFrom(from interop.Hash160, amount int) {
	if !gas.Transfer(from, runtime.GetExecutingScriptHash(), amount, nil) {
		panic("failed to transfer funds, aborting")
	}
}

// TransferTo moves amount of GAS from the executing contract to the account.
func TransferTo(to interop.Hash160, amount int) {
	if !gas.Transfer(runtime.GetExecutingScriptHash(), to, amount, nil) {
		panic("failed to transfer funds, aborting")
	}
}
