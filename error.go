package utf16any

import (
	"errors"
	"fmt"
)

// Error categories. Every argument error wraps exactly one of them, so
// callers can tell a bad range from a missing buffer with errors.Is.
var (
	// ErrArgumentOutOfRange indicates a size, offset or count outside its
	// permitted range.
	ErrArgumentOutOfRange = errors.New("argument out of range")

	// ErrNilArgument indicates a required slice argument was nil.
	ErrNilArgument = errors.New("nil argument")
)

// Specific argument errors.
var (
	// ErrTooManyChars indicates a query set longer than MaxChars.
	ErrTooManyChars = fmt.Errorf("%w: query set exceeds %d characters", ErrArgumentOutOfRange, MaxChars)

	// ErrStartOutOfRange indicates a start index outside [0, len(text)).
	ErrStartOutOfRange = fmt.Errorf("%w: start index must be within the text", ErrArgumentOutOfRange)

	// ErrCountOutOfRange indicates a negative count or one that runs past the
	// end of the text.
	ErrCountOutOfRange = fmt.Errorf("%w: count must not exceed text length minus start index", ErrArgumentOutOfRange)

	// ErrResultsTooSmall indicates a results buffer that cannot hold the worst
	// case number of records for the requested range.
	ErrResultsTooSmall = fmt.Errorf("%w: results buffer too small", ErrArgumentOutOfRange)

	// ErrNilChars indicates a nil query set. Pass an empty, non-nil slice to
	// search for nothing.
	ErrNilChars = fmt.Errorf("%w: query set is nil", ErrNilArgument)

	// ErrNilResults indicates a nil results buffer for a non-empty text.
	ErrNilResults = fmt.Errorf("%w: results buffer is nil", ErrNilArgument)
)

// ArgumentError reports which argument was rejected and with what value.
// It wraps one of the specific errors above.
type ArgumentError struct {
	Arg   string
	Value int
	Err   error
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("utf16any: %s=%d: %v", e.Arg, e.Value, e.Err)
}

// Unwrap returns the underlying error
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func argError(arg string, value int, err error) error {
	return &ArgumentError{Arg: arg, Value: value, Err: err}
}
