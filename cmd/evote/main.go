// Command evote is a demonstration CLI harness for the voting engine
// (SPEC_FULL.md §2 item 9): it runs an in-memory election, encrypts and
// signs one ballot per voter, writes them to a JSON file using the exact
// wire encoding of spec.md §6, reads them back, verifies and combines
// them, and prints the decrypted per-candidate tally. It exists so the
// ballot codec has a runnable consumer beyond unit tests, without
// reimplementing the external HTTP/account/storage surface spec.md §1
// declares out of scope.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cryptoballot/evote-core/ballot"
	"github.com/cryptoballot/evote-core/config"
	"github.com/cryptoballot/evote-core/engine"
)

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "evote",
		Short: "Run a demonstration election against the evote-core voting engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("evote: %w", err)
				}
			}
			votes, err := cmd.Flags().GetIntSlice("votes")
			if err != nil {
				return err
			}
			return runElection(v, votes)
		},
	}

	flags := root.PersistentFlags()
	flags.String("backend", "ec", `cryptographic back-end: "ff" or "ec"`)
	flags.Int("candidates", 5, "number of candidate slots (2-20)")
	flags.Int("max-tally", 1024, "discrete-log decode bound per candidate slot")
	flags.String("ballot-file", "ballots.json", "path to write/read the JSON wire-encoded ballots")
	flags.String("log-level", "info", `log level: "debug", "info", "warn", or "error"`)
	flags.IntSlice("votes", []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4}, "candidate index cast by each simulated voter")
	flags.StringVar(&cfgFile, "config", "", "optional config file (yaml/json/toml)")

	// The mapstructure tags in config.Config use camelCase while their CLI
	// flags use kebab-case, the same split vocdoni-davinci-node's
	// config.go makes between its Config struct tags and pflag names.
	_ = v.BindPFlag("backend", flags.Lookup("backend"))
	_ = v.BindPFlag("candidates", flags.Lookup("candidates"))
	_ = v.BindPFlag("maxTally", flags.Lookup("max-tally"))
	_ = v.BindPFlag("ballotFile", flags.Lookup("ballot-file"))
	_ = v.BindPFlag("logLevel", flags.Lookup("log-level"))

	return root
}

func runElection(v *viper.Viper, votes []int) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	electionID := uuid.New()
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("election_id", electionID.String()).Logger()
	logger.Info().Str("backend", string(cfg.Backend)).Int("candidates", cfg.NumCandidates).
		Int("max_tally", cfg.MaxTally).Msg("starting demo election")

	be := engine.BackendEC
	if cfg.Backend == config.BackendFF {
		be = engine.BackendFF
	}

	e, err := engine.New(be, cfg.NumCandidates, cfg.MaxTally)
	if err != nil {
		return fmt.Errorf("evote: %w", err)
	}

	ballots := make([]ballot.SignedBallot, 0, len(votes))
	for i, candidate := range votes {
		vote, err := engine.CreateVote(candidate, cfg.NumCandidates)
		if err != nil {
			return fmt.Errorf("evote: voter %d: %w", i, err)
		}
		sb, err := e.EncryptVote(vote, int64(i))
		if err != nil {
			return fmt.Errorf("evote: voter %d: %w", i, err)
		}
		ballots = append(ballots, sb)
	}

	if err := writeBallots(cfg.BallotFile, ballots); err != nil {
		return fmt.Errorf("evote: %w", err)
	}
	logger.Info().Int("ballots", len(ballots)).Str("file", cfg.BallotFile).Msg("ballots written")

	loaded, err := readBallots(cfg.BallotFile)
	if err != nil {
		return fmt.Errorf("evote: %w", err)
	}

	tally, err := e.Combine(loaded)
	if err != nil {
		logger.Error().Err(err).Msg("combine failed")
		return fmt.Errorf("evote: %w", err)
	}

	result, err := e.DecryptResult(tally)
	if err != nil {
		logger.Error().Err(err).Msg("decrypt_result failed")
		return fmt.Errorf("evote: %w", err)
	}

	logger.Info().Ints("result", result).Msg("election tallied")
	fmt.Println(result)
	return nil
}
