package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cryptoballot/evote-core/ballot"
)

// writeBallots serializes ballots as a JSON array using each
// ballot.SignedBallot's MarshalJSON (spec.md §6's canonical wire
// encoding) and writes it to path.
func writeBallots(path string, ballots []ballot.SignedBallot) error {
	data, err := json.MarshalIndent(ballots, "", "  ")
	if err != nil {
		return fmt.Errorf("write ballots: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write ballots: %w", err)
	}
	return nil
}

// readBallots reads and decodes the JSON array written by writeBallots.
func readBallots(path string) ([]ballot.SignedBallot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ballots: %w", err)
	}
	var ballots []ballot.SignedBallot
	if err := json.Unmarshal(data, &ballots); err != nil {
		return nil, fmt.Errorf("read ballots: %w", err)
	}
	return ballots, nil
}
