package modarith

import (
	"errors"
	"math/big"
)

// ErrNegative is returned by IntToBytes for a negative input; the canonical
// ballot/signature encoding (spec.md §4.1) never carries a sign byte.
var ErrNegative = errors.New("modarith: int_to_bytes requires a non-negative integer")

// IntToBytes encodes n as a minimum-length big-endian byte string with no
// sign byte. Zero encodes as a single zero byte, matching spec.md §4.1 (this
// is deliberately not the same convention as big.Int.Bytes(), which encodes
// zero as an empty slice).
func IntToBytes(n *big.Int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	if n.Sign() == 0 {
		return []byte{0}, nil
	}
	return n.Bytes(), nil
}

// BytesToInt decodes a big-endian byte string produced by IntToBytes (or any
// unsigned big-endian encoding) back into an integer.
func BytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
