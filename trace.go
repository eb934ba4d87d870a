package prng

import (
	"os"

	"github.com/rs/zerolog"
)

// debugEnabled controls whether tracing is enabled via the PRNG_DEBUG env var.
var debugEnabled = os.Getenv("PRNG_DEBUG") == "1"

var logger = newLogger()

func newLogger() zerolog.Logger {
	if !debugEnabled {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05.000",
	}).With().Timestamp().Str("pkg", "prng").Logger()
}

// SetLogger replaces the trace logger. It must be called before any engine
// is shared between goroutines.
func SetLogger(l zerolog.Logger) {
	logger = l
}

func traceSeedRetry(v Variant, attempt int) {
	logger.Debug().
		Str("variant", v.String()).
		Int("attempt", attempt).
		Int("max", seedAttempts).
		Msg("seed material produced forbidden state, retrying")
}

func traceRestoreRejected(v Variant, reason string, size int) {
	logger.Debug().
		Str("variant", v.String()).
		Str("reason", reason).
		Int("bytes", size).
		Msg("restore rejected")
}

func traceJump(v Variant, magnitude int) {
	logger.Debug().
		Str("variant", v.String()).
		Int("log2_distance", magnitude).
		Msg("jump")
}

func traceDefaultCreated(v Variant, seeded bool) {
	logger.Debug().
		Str("variant", v.String()).
		Bool("fixed_seed", seeded).
		Msg("default engine created")
}
