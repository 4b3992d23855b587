package engine

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cryptoballot/evote-core/ballot"
	"github.com/cryptoballot/evote-core/ecelgamal"
	"github.com/cryptoballot/evote-core/everr"
	"github.com/cryptoballot/evote-core/modp"
)

// Engine runs one election instance: it owns the election KeyPair (held
// inside its chosen cryptoBackend) exclusively and exposes the five
// operations of spec.md §6's external-interface table. Engine operations
// are pure with respect to engine state — spec.md §5 permits concurrent
// calls on the same Engine from multiple goroutines provided the
// back-end's RNG (crypto/rand, used throughout modp/ecelgamal/dsa/
// ecdsa25519) is safe for concurrent use, which it is.
type Engine struct {
	backend  cryptoBackend
	k        int
	maxTally int
}

// New constructs an Engine for k candidates (2 <= k <= 20), generating a
// fresh election KeyPair under the chosen back-end. maxTally bounds the
// discrete-log search DecryptResult performs per slot (spec.md §6;
// recommended production value 1024, but a constructor parameter here —
// not only a compile-time constant — so callers can exercise the overflow
// path of spec.md §8 scenario S6 with a deliberately small bound).
func New(be Backend, k, maxTally int) (*Engine, error) {
	if k < 2 || k > 20 {
		return nil, fmt.Errorf("engine: new: %w", everr.ErrInvalidK)
	}
	if maxTally < 0 {
		return nil, fmt.Errorf("engine: new: %w", everr.ErrInvalidParameters)
	}

	var b cryptoBackend
	switch be {
	case BackendFF:
		ff, err := newFFBackend()
		if err != nil {
			return nil, err
		}
		b = ff
	case BackendEC:
		ec, err := newECBackend()
		if err != nil {
			return nil, err
		}
		b = ec
	default:
		return nil, fmt.Errorf("engine: new: %w", everr.ErrInvalidParameters)
	}

	log.Debug().Str("backend", be.String()).Int("k", k).Int("max_tally", maxTally).
		Msg("election engine initialized")
	return &Engine{backend: b, k: k, maxTally: maxTally}, nil
}

// NumCandidates returns the K this Engine was constructed with.
func (e *Engine) NumCandidates() int { return e.k }

// PublicKey returns the election public key ballots are encrypted under.
func (e *Engine) PublicKey() ballot.PublicKey { return e.backend.publicKey() }

// EncryptVote validates vote, encrypts it slot-wise under the election
// public key, generates a fresh ephemeral signing key pair matching this
// Engine's back-end, signs the canonical encoding of the resulting
// ciphertexts, and returns the assembled SignedBallot (spec.md §4.6).
func (e *Engine) EncryptVote(vote Vote, voterID int64) (ballot.SignedBallot, error) {
	if err := vote.validate(e.k); err != nil {
		return ballot.SignedBallot{}, err
	}

	votes := make(ballot.EncryptedBallot, e.k)
	for i, bit := range vote {
		ct, err := e.backend.encryptBit(bit)
		if err != nil {
			return ballot.SignedBallot{}, fmt.Errorf("engine: encrypt_vote: slot %d: %w", i, err)
		}
		votes[i] = ct
	}

	scheme := e.backend.scheme()
	priv, pub, err := scheme.GenerateKeyPair()
	if err != nil {
		return ballot.SignedBallot{}, fmt.Errorf("engine: encrypt_vote: ephemeral key: %w", err)
	}

	msg, err := ballot.CanonicalBytes(votes)
	if err != nil {
		return ballot.SignedBallot{}, fmt.Errorf("engine: encrypt_vote: %w", err)
	}
	sig, err := scheme.Sign(priv, msg)
	if err != nil {
		return ballot.SignedBallot{}, fmt.Errorf("engine: encrypt_vote: sign: %w", err)
	}

	log.Debug().Int64("voter_id", voterID).Msg("ballot encrypted and signed")
	return ballot.SignedBallot{
		EncryptedVotes:     votes,
		Signature:          sig,
		EphemeralPublicKey: pub,
		VoterID:            voterID,
	}, nil
}

// VerifyBallot recomputes the canonical bytes of b.EncryptedVotes and
// verifies b.Signature against b.EphemeralPublicKey (spec.md §4.6). It
// never consults or requires a voter-key registry, since the ephemeral
// public key travels with the ballot itself.
func (e *Engine) VerifyBallot(b ballot.SignedBallot) bool {
	if len(b.EncryptedVotes) != e.k {
		return false
	}
	msg, err := ballot.CanonicalBytes(b.EncryptedVotes)
	if err != nil {
		return false
	}
	return e.backend.scheme().Verify(b.EphemeralPublicKey, msg, b.Signature)
}

// Combine verifies every ballot's signature, then folds each of the k
// slots under the back-end's homomorphic combination (spec.md §4.6). The
// first ballot seeds each slot's accumulator directly rather than folding
// against an explicit identity ciphertext, per spec.md §9's "neutral
// element vs. ciphertext sentinel" redesign note — (1, 1)/(1, 0) are valid
// sentinels for the group but not valid ciphertexts, so using one as a
// starting accumulator would conflate "no votes yet" with "an encryption
// of zero". Combine is commutative and associative: its result does not
// depend on ballot order (spec.md §5), and it short-circuits on the first
// verification failure, naming the offending voter (spec.md §7).
func (e *Engine) Combine(ballots []ballot.SignedBallot) (ballot.Tally, error) {
	if len(ballots) == 0 {
		return nil, fmt.Errorf("engine: combine: %w: empty ballot set", everr.ErrInvalidParameters)
	}

	tally := make(ballot.Tally, e.k)
	for i, b := range ballots {
		if !e.VerifyBallot(b) {
			voterID := strconv.FormatInt(b.VoterID, 10)
			log.Warn().Int64("voter_id", b.VoterID).Msg("ballot rejected: signature verification failed")
			return nil, everr.BadBallot(voterID, everr.ErrInvalidSignature)
		}
		for slot := 0; slot < e.k; slot++ {
			if i == 0 {
				tally[slot] = b.EncryptedVotes[slot]
				continue
			}
			tally[slot] = e.backend.combine(tally[slot], b.EncryptedVotes[slot])
		}
	}

	log.Debug().Int("ballots", len(ballots)).Int("slots", e.k).Msg("tally computed")
	return tally, nil
}

// DecryptResult decrypts each slot of tally, returning the per-candidate
// vote counts (spec.md §4.6). It fails with everr.ErrDecodeFailure
// (wrapped, naming the slot) if any slot's plaintext exceeds the Engine's
// configured maxTally.
func (e *Engine) DecryptResult(tally ballot.Tally) ([]int, error) {
	if len(tally) != e.k {
		return nil, fmt.Errorf("engine: decrypt_result: %w", everr.ErrInvalidParameters)
	}

	results := make([]int, e.k)
	for i, ct := range tally {
		v, err := e.backend.decryptSmall(ct, e.maxTally)
		if errors.Is(err, modp.ErrDecodeFailure) || errors.Is(err, ecelgamal.ErrDecodeFailure) {
			err = fmt.Errorf("%w: %w", everr.ErrDecodeFailure, err)
		}
		if err != nil {
			log.Error().Int("slot", i).Int("max_tally", e.maxTally).
				Msg("decode search exceeded bound")
			return nil, fmt.Errorf("engine: decrypt_result: slot %d: %w", i, err)
		}
		results[i] = v
	}
	return results, nil
}
