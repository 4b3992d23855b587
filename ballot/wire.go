package ballot

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/cryptoballot/evote-core/curve25519m"
	"github.com/cryptoballot/evote-core/ecelgamal"
	"github.com/cryptoballot/evote-core/modarith"
	"github.com/cryptoballot/evote-core/modp"
)

// wireBallot is the exact JSON shape spec.md §6 specifies for the external
// store: decimal-stringified ciphertext components, hex-without-0x-prefix
// signature components, a prefixed public-key string, and an integer
// voter_id (fixing the mixed hex-with/without-prefix inconsistency spec.md
// §9 open question 4 calls out in the source material).
type wireBallot struct {
	EncryptedVotes     []json.RawMessage `json:"encrypted_votes"`
	Signature          [2]string         `json:"signature"`
	EphemeralPublicKey string            `json:"ephemeral_public_key"`
	VoterID            int64             `json:"voter_id"`
}

// MarshalJSON implements the canonical wire encoding of spec.md §6.
func (sb SignedBallot) MarshalJSON() ([]byte, error) {
	votes := make([]json.RawMessage, len(sb.EncryptedVotes))
	for i, ct := range sb.EncryptedVotes {
		raw, err := marshalCiphertext(ct)
		if err != nil {
			return nil, fmt.Errorf("ballot: slot %d: %w", i, err)
		}
		votes[i] = raw
	}

	pk, err := marshalPublicKey(sb.EphemeralPublicKey)
	if err != nil {
		return nil, err
	}

	w := wireBallot{
		EncryptedVotes:     votes,
		Signature:          [2]string{hexOf(sb.Signature.R), hexOf(sb.Signature.S)},
		EphemeralPublicKey: pk,
		VoterID:            sb.VoterID,
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the canonical wire encoding of spec.md §6. The
// ciphertext shape ([c1, c2] vs [[u1,v1],[u2,v2]]) is inferred from the
// decoded ephemeral_public_key prefix, since a ballot's ciphertexts always
// share its engine's back-end.
func (sb *SignedBallot) UnmarshalJSON(data []byte) error {
	var w wireBallot
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	pk, err := unmarshalPublicKey(w.EphemeralPublicKey)
	if err != nil {
		return err
	}

	votes := make(EncryptedBallot, len(w.EncryptedVotes))
	for i, raw := range w.EncryptedVotes {
		ct, err := unmarshalCiphertext(raw, pk.Backend)
		if err != nil {
			return fmt.Errorf("ballot: slot %d: %w", i, err)
		}
		votes[i] = ct
	}

	r, err := hexToInt(w.Signature[0])
	if err != nil {
		return fmt.Errorf("ballot: signature.r: %w", err)
	}
	s, err := hexToInt(w.Signature[1])
	if err != nil {
		return fmt.Errorf("ballot: signature.s: %w", err)
	}

	*sb = SignedBallot{
		EncryptedVotes:     votes,
		Signature:          Signature{R: r, S: s},
		EphemeralPublicKey: pk,
		VoterID:            w.VoterID,
	}
	return nil
}

func marshalCiphertext(ct Ciphertext) (json.RawMessage, error) {
	switch ct.Backend {
	case FF:
		return json.Marshal([2]string{ct.FF.C1.String(), ct.FF.C2.String()})
	case EC:
		return json.Marshal([2][2]string{
			{ct.EC.C1.U.String(), ct.EC.C1.V.String()},
			{ct.EC.C2.U.String(), ct.EC.C2.V.String()},
		})
	default:
		return nil, fmt.Errorf("ballot: unknown backend %v", ct.Backend)
	}
}

func unmarshalCiphertext(raw json.RawMessage, backend Backend) (Ciphertext, error) {
	switch backend {
	case FF:
		var pair [2]string
		if err := json.Unmarshal(raw, &pair); err != nil {
			return Ciphertext{}, err
		}
		c1, ok := new(big.Int).SetString(pair[0], 10)
		if !ok {
			return Ciphertext{}, fmt.Errorf("ballot: invalid decimal %q", pair[0])
		}
		c2, ok := new(big.Int).SetString(pair[1], 10)
		if !ok {
			return Ciphertext{}, fmt.Errorf("ballot: invalid decimal %q", pair[1])
		}
		return NewFFCiphertext(modp.Ciphertext{C1: c1, C2: c2}), nil
	case EC:
		var pair [2][2]string
		if err := json.Unmarshal(raw, &pair); err != nil {
			return Ciphertext{}, err
		}
		c1u, ok := new(big.Int).SetString(pair[0][0], 10)
		if !ok {
			return Ciphertext{}, fmt.Errorf("ballot: invalid decimal %q", pair[0][0])
		}
		c1v, ok := new(big.Int).SetString(pair[0][1], 10)
		if !ok {
			return Ciphertext{}, fmt.Errorf("ballot: invalid decimal %q", pair[0][1])
		}
		c2u, ok := new(big.Int).SetString(pair[1][0], 10)
		if !ok {
			return Ciphertext{}, fmt.Errorf("ballot: invalid decimal %q", pair[1][0])
		}
		c2v, ok := new(big.Int).SetString(pair[1][1], 10)
		if !ok {
			return Ciphertext{}, fmt.Errorf("ballot: invalid decimal %q", pair[1][1])
		}
		return NewECCiphertext(ecelgamal.Ciphertext{
			C1: curve25519m.Point{U: c1u, V: c1v},
			C2: curve25519m.Point{U: c2u, V: c2v},
		}), nil
	default:
		return Ciphertext{}, fmt.Errorf("ballot: unknown backend %v", backend)
	}
}

func marshalPublicKey(pk PublicKey) (string, error) {
	switch pk.Backend {
	case FF:
		return "eg," + hexOf(pk.FF), nil
	case EC:
		return fmt.Sprintf("ec,%s,%s", hexOf(pk.EC.U), hexOf(pk.EC.V)), nil
	default:
		return "", fmt.Errorf("ballot: unknown backend %v", pk.Backend)
	}
}

func unmarshalPublicKey(s string) (PublicKey, error) {
	parts := strings.Split(s, ",")
	switch {
	case len(parts) == 2 && parts[0] == "eg":
		y, err := hexToInt(parts[1])
		if err != nil {
			return PublicKey{}, fmt.Errorf("ballot: ephemeral_public_key: %w", err)
		}
		return NewFFPublicKey(y), nil
	case len(parts) == 3 && parts[0] == "ec":
		u, err := hexToInt(parts[1])
		if err != nil {
			return PublicKey{}, fmt.Errorf("ballot: ephemeral_public_key: %w", err)
		}
		v, err := hexToInt(parts[2])
		if err != nil {
			return PublicKey{}, fmt.Errorf("ballot: ephemeral_public_key: %w", err)
		}
		return NewECPublicKey(curve25519m.Point{U: u, V: v}), nil
	default:
		return PublicKey{}, fmt.Errorf("ballot: malformed ephemeral_public_key %q", s)
	}
}

func hexOf(n *big.Int) string {
	b, err := modarith.IntToBytes(n)
	if err != nil {
		return "00"
	}
	return hex.EncodeToString(b)
}

func hexToInt(s string) (*big.Int, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}
