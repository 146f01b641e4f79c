package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrUpdateAccess is thrown by Update when the owner witness is missing.
const ErrUpdateAccess = "only owner can update contract"

// Update checks owner witness and updates executing contract through the
// native Management contract. Contract version is appended to data.
func Update(owner interop.Hash160, nefFile, manifest []byte, data any) {
	if !runtime.CheckWitness(owner) {
		panic(ErrUpdateAccess)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, AppendVersion(data))
}
