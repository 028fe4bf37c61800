package asm

import (
	"errors"

	"github.com/ezrec/sbasm/translate"
)

var f = translate.From

var (
	// Encoding errors
	ErrInstrUnknown = errors.New(f("unknown instruction"))
	ErrRegUnknown   = errors.New(f("unknown register"))
	ErrImmNotUpper  = errors.New(f("the immediate value for mvt should be 0 in the eight least-significant bits"))
	ErrImmTooLarge  = errors.New(f("the immediate value is too large"))
	ErrBadData      = errors.New(f("missing or bad data"))

	// Symbol table errors
	ErrDefineTooLarge = errors.New(f("define value too large"))
	ErrRedefined      = errors.New(f("define is being redefined"))
	ErrDepthReserved  = errors.New(f("symbol DEPTH is reserved, it cannot be redefined"))

	// Depth and placement errors
	ErrDepthNotEven   = errors.New(f("Memory depth must be an integer multiple of 2"))
	ErrBranchTooLarge = errors.New(f("the branch target is too large"))
	ErrDepthExceeded  = errors.New(f("the program does not fit in the memory"))

	// Classification errors
	ErrLineUnknown = errors.New(f("can't parse assembly code"))
)

// ErrSymbolMissing is an operand that is neither a number nor a known symbol.
type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("undeclared identifier (label or define), or value error: '%v'", string(err))
}

// ErrExpression is a $() operand that failed compile-time evaluation.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrLine attaches the failing source line to an assembly error.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrLine) Unwrap() error {
	return err.Err
}

// ErrPredefine attaches the symbol name to a failed -D style predefine.
type ErrPredefine struct {
	Name string
	Err  error
}

func (err ErrPredefine) Error() string {
	return f("predefined symbol '%v' %v", err.Name, err.Err)
}

func (err ErrPredefine) Unwrap() error {
	return err.Err
}

// reportable is the set of error kinds with a user-facing diagnostic. Anything
// outside this set clamps to the generic fallback.
var reportable = []error{
	ErrInstrUnknown,
	ErrRegUnknown,
	ErrImmNotUpper,
	ErrImmTooLarge,
	ErrBadData,
	ErrDefineTooLarge,
	ErrRedefined,
	ErrDepthReserved,
	ErrBranchTooLarge,
	ErrLineUnknown,
}

// Report formats the single diagnostic line for a failed run. The depth and
// instruction count describe the translation state at the point of failure and
// are appended for the depth- and branch-related kinds. Unknown error values
// produce the generic fallback; a nil error produces an empty string.
func Report(err error, depth, count int) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrDepthNotEven) {
		return f("ERROR: %v", ErrDepthNotEven)
	}
	if errors.Is(err, ErrDepthExceeded) {
		return f("ERROR: %v (%d words, memory depth %d)", ErrDepthExceeded, count+1, depth)
	}

	var pre ErrPredefine
	if errors.As(err, &pre) {
		return f("ERROR: %v", pre)
	}

	var line ErrLine
	if !errors.As(err, &line) {
		return f("ERROR: UNKNOWN")
	}

	if errors.Is(line.Err, ErrBranchTooLarge) {
		return f("ERROR: line %d: %v (memory depth %d words, instruction %d)",
			line.LineNo, line.Err, depth, count)
	}

	var missing ErrSymbolMissing
	var expr ErrExpression
	if errors.As(line.Err, &missing) || errors.As(line.Err, &expr) {
		return f("ERROR: line %d: %v", line.LineNo, line.Err)
	}

	for _, known := range reportable {
		if errors.Is(line.Err, known) {
			return f("ERROR: line %d: %v", line.LineNo, line.Err)
		}
	}

	return f("ERROR: UNKNOWN")
}
