// Package ballot defines the wire-level ballot model (spec.md §3, §4.7): the
// tagged FF/EC ciphertext and public-key unions, the SignedBallot structure,
// canonical byte encoding used for signing, and the JSON wire encoding
// consumed by the external store (spec.md §6). It is deliberately
// back-end-agnostic so the engine and signer packages can share one
// representation instead of branching on a "mode" string the way
// original_source/backend/models.py does.
package ballot

import (
	"math/big"

	"github.com/cryptoballot/evote-core/curve25519m"
	"github.com/cryptoballot/evote-core/ecelgamal"
	"github.com/cryptoballot/evote-core/modp"
)

// Backend discriminates which cryptographic back-end produced a Ciphertext
// or PublicKey — the tagged-sum replacement for the dynamic FFKey/ECKey
// typing spec.md §9 flags as a redesign item.
type Backend int

const (
	// FF is the finite-field (exponential ElGamal / DSA) back-end.
	FF Backend = iota
	// EC is the elliptic-curve (EC-ElGamal / ECDSA) back-end.
	EC
)

func (b Backend) String() string {
	switch b {
	case FF:
		return "ff"
	case EC:
		return "ec"
	default:
		return "unknown"
	}
}

// Ciphertext is a tagged union over modp.Ciphertext (FF) and
// ecelgamal.Ciphertext (EC). Exactly one of FF/EC is meaningful, selected
// by Backend.
type Ciphertext struct {
	Backend Backend
	FF      modp.Ciphertext
	EC      ecelgamal.Ciphertext
}

// NewFFCiphertext wraps a finite-field ciphertext.
func NewFFCiphertext(ct modp.Ciphertext) Ciphertext {
	return Ciphertext{Backend: FF, FF: ct}
}

// NewECCiphertext wraps an elliptic-curve ciphertext.
func NewECCiphertext(ct ecelgamal.Ciphertext) Ciphertext {
	return Ciphertext{Backend: EC, EC: ct}
}

// EncryptedBallot is a length-K vector of ciphertexts, one per candidate
// slot (spec.md §3).
type EncryptedBallot []Ciphertext

// Tally is a length-K Ciphertext vector, the slot-wise homomorphic sum of
// a set of SignedBallots' ciphertexts (spec.md §3). It is never stored as
// authoritative state — it is always recomputed from the underlying
// ballots.
type Tally []Ciphertext

// PublicKey is a tagged union over an FF residue (*big.Int) and an EC
// affine point, matching the Key = FFKey(integer) | ECKey(point) sum type
// spec.md §9 calls for.
type PublicKey struct {
	Backend Backend
	FF      *big.Int
	EC      curve25519m.Point
}

// NewFFPublicKey wraps a finite-field public key.
func NewFFPublicKey(y *big.Int) PublicKey {
	return PublicKey{Backend: FF, FF: y}
}

// NewECPublicKey wraps an elliptic-curve public key.
func NewECPublicKey(p curve25519m.Point) PublicKey {
	return PublicKey{Backend: EC, EC: p}
}

// Signature is a DSA or ECDSA (r, s) pair; both back-ends share this shape
// (spec.md §3 SignedBallot.signature).
type Signature struct {
	R, S *big.Int
}

// SignedBallot is a per-voter ballot: its encrypted votes, the signature
// over their canonical encoding, the ephemeral signing public key embedded
// alongside it (spec.md §9's "per-ballot ephemeral signing key" design
// note — this removes the need for a global voter-key registry), and the
// voter identifier asserted by the external authenticator.
type SignedBallot struct {
	EncryptedVotes     EncryptedBallot
	Signature          Signature
	EphemeralPublicKey PublicKey
	VoterID            int64
}
