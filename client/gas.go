package client

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
)

const gasPrecision = 8

// ParseGAS converts a decimal GAS amount like "0.5" to base units.
func ParseGAS(s string) (*big.Int, error) {
	v, err := fixedn.FromString(s, gasPrecision)
	if err != nil {
		return nil, fmt.Errorf("invalid GAS amount %q: %w", s, err)
	}
	if v.Sign() < 0 {
		return nil, errors.New("negative GAS amount")
	}
	return v, nil
}

// FormatGAS converts base units to a decimal GAS amount.
func FormatGAS(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return fixedn.ToString(v, gasPrecision)
}
