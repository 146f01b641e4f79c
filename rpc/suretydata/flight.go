package suretydata

import (
	"fmt"
	"math/big"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// FlightKey computes the identifier of the flight the same way the contract
// does: SHA256 of serialized array of code, destination and landing time.
func FlightKey(code, destination string, landing int64) util.Uint256 {
	data, err := stackitem.Serialize(stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray([]byte(code)),
		stackitem.NewByteArray([]byte(destination)),
		stackitem.NewBigInteger(big.NewInt(landing)),
	}))
	if err != nil {
		// Serialization of a flat array of primitive items never fails.
		panic(err)
	}

	return hash.Sha256(data)
}

// EncodeFlightID returns a base58 text form of the flight key used in URLs
// and logs.
func EncodeFlightID(key util.Uint256) string {
	return base58.Encode(key.BytesBE())
}

// DecodeFlightID parses the text form produced by EncodeFlightID.
func DecodeFlightID(s string) (util.Uint256, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("decode base58: %w", err)
	}

	key, err := util.Uint256DecodeBytesBE(b)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("decode flight key: %w", err)
	}

	return key, nil
}
