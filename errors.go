package marina

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned when a line of the inventory file cannot be turned into a Boat.
	ErrMalformedLine = errors.New("malformed line")
	// ErrEmptyBay is returned when a land location has no bay letter.
	ErrEmptyBay = fmt.Errorf("%w: empty bay letter", ErrMalformedLine)
	// ErrNotFound is returned when no boat matches a name.
	ErrNotFound = errors.New("no boat with that name")
	// ErrOverPayment is returned when a payment exceeds the amount owed.
	ErrOverPayment = errors.New("payment exceeds the amount owed")
	// ErrCapacityExceeded is returned when the marina is full.
	ErrCapacityExceeded = errors.New("marina is full")
	// ErrIO wraps any failure to read or write the inventory file.
	ErrIO = errors.New("inventory file error")
)

// LineError reports a line of input that was skipped.
type LineError struct {
	Line int    // 1-based line number
	Text string // the offending line, without its terminator
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
