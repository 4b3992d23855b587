// Package config loads the CLI demo harness's configuration via
// github.com/spf13/viper, grounded in vocdoni-davinci-node's
// cmd/davinci-sequencer/config.go (pflag-bound fields, mapstructure tags,
// defaulted constants). The voting core itself (package engine) never
// imports this package — engine.New takes its Backend/K/MaxTally as plain
// arguments, so the cryptographic core stays importable without pulling in
// the CLI's configuration or logging dependencies.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Backend names the engine.Backend selected by configuration, before it is
// resolved to the ballot.Backend/engine.Backend sum type by cmd/evote
// (package config does not import engine, to keep the dependency direction
// CLI -> config -> core, never core -> config).
type Backend string

const (
	BackendFF Backend = "ff"
	BackendEC Backend = "ec"
)

// Config is the CLI demo harness's configuration (SPEC_FULL.md §3).
type Config struct {
	// Backend selects "ff" (exponential ElGamal + DSA) or "ec" (EC-ElGamal
	// + ECDSA over Curve25519).
	Backend Backend `mapstructure:"backend"`
	// NumCandidates is K, the number of candidate slots (2 <= K <= 20).
	NumCandidates int `mapstructure:"candidates"`
	// MaxTally bounds the discrete-log search performed at decryption.
	MaxTally int `mapstructure:"maxTally"`
	// BallotFile is the JSON file path the demo harness reads/writes
	// wire-encoded ballot.SignedBallot records to/from.
	BallotFile string `mapstructure:"ballotFile"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `mapstructure:"logLevel"`
}

const (
	defaultBackend       = BackendEC
	defaultNumCandidates = 5
	defaultMaxTally      = 1024
	defaultBallotFile    = "ballots.json"
	defaultLogLevel      = "info"
)

// Load populates a Config from v, which the caller has already bound to
// command-line flags, environment variables (prefix EVOTE_), and/or a
// config file, in that order of precedence — the same layering
// vocdoni-davinci-node's config.go uses.
func Load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("evote")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("backend", string(defaultBackend))
	v.SetDefault("candidates", defaultNumCandidates)
	v.SetDefault("maxTally", defaultMaxTally)
	v.SetDefault("ballotFile", defaultBallotFile)
	v.SetDefault("logLevel", defaultLogLevel)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Backend = Backend(strings.ToLower(string(cfg.Backend)))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Backend != BackendFF && c.Backend != BackendEC {
		return fmt.Errorf("config: backend must be %q or %q, got %q", BackendFF, BackendEC, c.Backend)
	}
	if c.NumCandidates < 2 || c.NumCandidates > 20 {
		return fmt.Errorf("config: candidates must be in [2, 20], got %d", c.NumCandidates)
	}
	if c.MaxTally < 0 {
		return fmt.Errorf("config: maxTally must be non-negative, got %d", c.MaxTally)
	}
	return nil
}
