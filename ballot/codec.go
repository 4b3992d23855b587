package ballot

import (
	"fmt"
	"math/big"

	"github.com/cryptoballot/evote-core/modarith"
)

// CanonicalBytes returns the canonical byte encoding of an EncryptedBallot
// used both for signing and for verification (spec.md §4.7): the
// concatenation, in slot order, of int_to_bytes(C1) ‖ int_to_bytes(C2) for
// the FF back-end, or int_to_bytes(C1.u) ‖ int_to_bytes(C1.v) ‖
// int_to_bytes(C2.u) ‖ int_to_bytes(C2.v) for EC. There are deliberately no
// length prefixes or domain-separation tags — spec.md §4.7 notes this is a
// compatibility constraint with the external store, not an oversight; a
// hardened redesign is listed as an open question rather than implemented
// here.
func CanonicalBytes(eb EncryptedBallot) ([]byte, error) {
	var out []byte
	for i, ct := range eb {
		switch ct.Backend {
		case FF:
			b, err := appendInts(out, ct.FF.C1, ct.FF.C2)
			if err != nil {
				return nil, fmt.Errorf("ballot: slot %d: %w", i, err)
			}
			out = b
		case EC:
			b, err := appendInts(out, ct.EC.C1.U, ct.EC.C1.V, ct.EC.C2.U, ct.EC.C2.V)
			if err != nil {
				return nil, fmt.Errorf("ballot: slot %d: %w", i, err)
			}
			out = b
		default:
			return nil, fmt.Errorf("ballot: slot %d: unknown backend %v", i, ct.Backend)
		}
	}
	return out, nil
}

func appendInts(out []byte, ns ...*big.Int) ([]byte, error) {
	for _, n := range ns {
		b, err := modarith.IntToBytes(n)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}
