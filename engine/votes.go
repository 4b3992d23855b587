package engine

import "github.com/cryptoballot/evote-core/everr"

// CreateVote returns the indicator vector for candidate out of k candidate
// slots (spec.md §4.6). It fails with everr.ErrInvalidCandidate unless
// 0 <= candidate < k.
func CreateVote(candidate, k int) (Vote, error) {
	if candidate < 0 || candidate >= k {
		return nil, everr.ErrInvalidCandidate
	}
	v := make(Vote, k)
	v[candidate] = 1
	return v, nil
}

// validate checks that vote is a length-k indicator vector over {0, 1}
// with exactly one 1 set (spec.md §3's Vote invariant, enforced at
// creation per spec.md §9 open question 1 — tally-time re-validation is
// deliberately not performed, since without a ZK proof the server cannot
// distinguish a malformed ciphertext from a valid alternative encoding
// without decrypting each slot, which would violate vote secrecy).
func (v Vote) validate(k int) error {
	if len(v) != k {
		return everr.ErrBadVote
	}
	sum := 0
	for _, bit := range v {
		if bit != 0 && bit != 1 {
			return everr.ErrBadVote
		}
		sum += bit
	}
	if sum != 1 {
		return everr.ErrBadVote
	}
	return nil
}
