package engine

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the package-level structured logger (spec.md's ambient-stack
// expansion, SPEC_FULL.md §2 item 8), matching the pack's convention of a
// package-scoped zerolog.Logger rather than fmt.Printf. It is only ever
// attached at the engine boundary — ballot rejected, tally computed,
// decode bound exceeded — never inside the arithmetic loops in modp,
// ecelgamal, curve25519m, dsa, or ecdsa25519.
var log = zerolog.New(os.Stderr).With().Timestamp().Str("component", "engine").Logger()
