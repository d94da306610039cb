package summary

import "errors"

// Errors raised by the reduction pipeline. Both abort the whole summary
// for the affected strategy; no partial record is ever produced.
var (
	// ErrEmptyInput is returned for a zero-length outcome sequence
	// (mean and standard deviation are undefined).
	ErrEmptyInput = errors.New("empty outcome sequence")

	// ErrInconsistentSchema is returned when the bet field is present on
	// some hands and absent on others within one sequence. Defaulting the
	// gaps would silently misalign wager totals, so it is rejected instead.
	ErrInconsistentSchema = errors.New("bet field present on some hands but not others")
)
