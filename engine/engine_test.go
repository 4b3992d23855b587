package engine

import (
	"errors"
	"math/big"
	"testing"

	"github.com/cryptoballot/evote-core/ballot"
	"github.com/cryptoballot/evote-core/everr"
)

// buildElection runs the S1/S2/S3-shaped scenario used throughout this
// file: construct an Engine, cast the given candidate per voter, verify
// and combine every ballot, then decrypt the tally.
func buildElection(t *testing.T, be Backend, k, maxTally int, candidates []int) ([]int, []ballot.SignedBallot) {
	t.Helper()
	e, err := New(be, k, maxTally)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ballots := make([]ballot.SignedBallot, len(candidates))
	for i, c := range candidates {
		vote, err := CreateVote(c, k)
		if err != nil {
			t.Fatalf("CreateVote(%d): %v", c, err)
		}
		sb, err := e.EncryptVote(vote, int64(i))
		if err != nil {
			t.Fatalf("EncryptVote(voter %d): %v", i, err)
		}
		if !e.VerifyBallot(sb) {
			t.Fatalf("VerifyBallot(voter %d): want true", i)
		}
		ballots[i] = sb
	}

	tally, err := e.Combine(ballots)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	result, err := e.DecryptResult(tally)
	if err != nil {
		t.Fatalf("DecryptResult: %v", err)
	}
	return result, ballots
}

// TestScenarioS1Unanimous is spec.md §8 scenario S1: 10 EC voters all
// choose candidate 0 out of 5.
func TestScenarioS1Unanimous(t *testing.T) {
	candidates := make([]int, 10)
	result, _ := buildElection(t, BackendEC, 5, 1024, candidates)
	want := []int{10, 0, 0, 0, 0}
	assertResult(t, want, result)
}

// TestScenarioS2Distribution is spec.md §8 scenario S2: 10 EC voters, voter
// i votes for candidate i mod 5.
func TestScenarioS2Distribution(t *testing.T) {
	candidates := make([]int, 10)
	for i := range candidates {
		candidates[i] = i % 5
	}
	result, _ := buildElection(t, BackendEC, 5, 1024, candidates)
	want := []int{2, 2, 2, 2, 2}
	assertResult(t, want, result)
}

// TestScenarioS3Mixed is spec.md §8 scenario S3: 10 FF voters cast the
// fixed vote list.
func TestScenarioS3Mixed(t *testing.T) {
	candidates := []int{0, 0, 1, 2, 3, 4, 4, 4, 3, 2}
	result, _ := buildElection(t, BackendFF, 5, 1024, candidates)
	want := []int{2, 1, 2, 2, 3}
	assertResult(t, want, result)
}

// TestScenarioS4Tamper is spec.md §8 scenario S4: flipping the last byte
// of one ballot's first ciphertext component must make Combine reject it
// with BadBallot naming the offending voter.
func TestScenarioS4Tamper(t *testing.T) {
	e, err := New(BackendEC, 5, 1024)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	candidates := make([]int, 10)
	for i := range candidates {
		candidates[i] = i % 5
	}

	ballots := make([]ballot.SignedBallot, len(candidates))
	for i, c := range candidates {
		vote, err := CreateVote(c, 5)
		if err != nil {
			t.Fatalf("CreateVote: %v", err)
		}
		sb, err := e.EncryptVote(vote, int64(i))
		if err != nil {
			t.Fatalf("EncryptVote: %v", err)
		}
		ballots[i] = sb
	}

	orig := ballots[3].EncryptedVotes[0].EC.C1.U
	ballots[3].EncryptedVotes[0].EC.C1.U = new(big.Int).Xor(orig, big.NewInt(1))

	_, err = e.Combine(ballots)
	if err == nil {
		t.Fatal("Combine: want BadBallot error, got nil")
	}
	var bb *everr.ErrBadBallot
	if !errors.As(err, &bb) {
		t.Fatalf("Combine error = %v, want *everr.ErrBadBallot", err)
	}
	if bb.VoterID != "3" {
		t.Fatalf("BadBallot voter_id = %q, want %q", bb.VoterID, "3")
	}
}

// TestScenarioS5WrongCandidate is spec.md §8 scenario S5.
func TestScenarioS5WrongCandidate(t *testing.T) {
	_, err := CreateVote(7, 5)
	if !errors.Is(err, everr.ErrInvalidCandidate) {
		t.Fatalf("CreateVote(7, 5) error = %v, want everr.ErrInvalidCandidate", err)
	}
}

// TestScenarioS6Overflow is spec.md §8 scenario S6: a deliberately small
// MaxTally makes DecryptResult surface ErrDecodeFailure.
func TestScenarioS6Overflow(t *testing.T) {
	candidates := make([]int, 10)
	e, err := New(BackendEC, 5, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ballots := make([]ballot.SignedBallot, len(candidates))
	for i, c := range candidates {
		vote, err := CreateVote(c, 5)
		if err != nil {
			t.Fatalf("CreateVote: %v", err)
		}
		sb, err := e.EncryptVote(vote, int64(i))
		if err != nil {
			t.Fatalf("EncryptVote: %v", err)
		}
		ballots[i] = sb
	}

	tally, err := e.Combine(ballots)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	_, err = e.DecryptResult(tally)
	if !errors.Is(err, everr.ErrDecodeFailure) {
		t.Fatalf("DecryptResult error = %v, want everr.ErrDecodeFailure", err)
	}
}

// TestCombineCommutative checks spec.md §8 property 7: permuting a ballot
// set does not change the combined tally.
func TestCombineCommutative(t *testing.T) {
	e, err := New(BackendFF, 3, 64)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	candidates := []int{0, 1, 2, 1, 0}
	ballots := make([]ballot.SignedBallot, len(candidates))
	for i, c := range candidates {
		vote, _ := CreateVote(c, 3)
		sb, err := e.EncryptVote(vote, int64(i))
		if err != nil {
			t.Fatalf("EncryptVote: %v", err)
		}
		ballots[i] = sb
	}

	forward, err := e.Combine(ballots)
	if err != nil {
		t.Fatalf("Combine(forward): %v", err)
	}
	reversed := make([]ballot.SignedBallot, len(ballots))
	for i, b := range ballots {
		reversed[len(ballots)-1-i] = b
	}
	backward, err := e.Combine(reversed)
	if err != nil {
		t.Fatalf("Combine(backward): %v", err)
	}

	rf, err := e.DecryptResult(forward)
	if err != nil {
		t.Fatalf("DecryptResult(forward): %v", err)
	}
	rb, err := e.DecryptResult(backward)
	if err != nil {
		t.Fatalf("DecryptResult(backward): %v", err)
	}
	assertResult(t, rf, rb)
}

func TestCombineEmptySet(t *testing.T) {
	e, err := New(BackendEC, 2, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := e.Combine(nil); err == nil {
		t.Fatal("Combine(nil): want error, got nil")
	}
}

func TestNewInvalidK(t *testing.T) {
	cases := []int{0, 1, 21, -3}
	for _, k := range cases {
		if _, err := New(BackendFF, k, 64); !errors.Is(err, everr.ErrInvalidK) {
			t.Errorf("New(k=%d) error = %v, want everr.ErrInvalidK", k, err)
		}
	}
}

func assertResult(t *testing.T, want, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("result length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("result = %v, want %v", got, want)
		}
	}
}
