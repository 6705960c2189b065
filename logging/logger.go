package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is the package-level sink every diagnostic line in this module
// writes through. It defaults to discarding all output so that importing
// this module never produces unsolicited stderr noise; call SetLogger to
// opt in.
var Logger zerolog.Logger = zerolog.New(io.Discard)

// SetLogger replaces the package-level sink. Typically called once, at
// process startup, with a logger configured by the embedding application
// (for example cmd/cutpost-bench wires one to stderr).
func SetLogger(l zerolog.Logger) {
	Logger = l
}

// PostsolveResidual logs a DuplicateColumn undo that could not satisfy
// bounds and integrality within tolerance, per spec §7: reported, not
// fatal — the caller leaves the column values unmodified and continues.
func PostsolveResidual(col, dupCol int32, residual, scale float64) {
	Logger.Warn().
		Int32("col", col).
		Int32("duplicate_col", dupCol).
		Float64("residual", residual).
		Float64("scale", scale).
		Msg("postsolve: DuplicateColumn undo left a residual outside tolerance")
}

// NumericOverflow logs a value that crossed the configured infinity
// sentinel during a reduction's undo, per spec §7's overflow-as-
// infeasibility reporting rule.
func NumericOverflow(context string, value float64) {
	Logger.Warn().
		Str("context", context).
		Float64("value", value).
		Msg("postsolve: value crossed infinity sentinel, reporting as infeasible")
}
