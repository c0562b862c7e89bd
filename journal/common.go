package journal

import (
	"errors"
)

var ErrEmptyEventsSupplied = errors.New("no events supplied to append")
var ErrNilLogger = errors.New("nil logger supplied")

// SequenceNumberUint is a type alias for uint, representing the position of an event in the journal.
type SequenceNumberUint = uint

// MaxSequenceNumberUint is a type alias for uint, representing the highest sequence number of a query result.
type MaxSequenceNumberUint = uint

// Logger interface for append/query logging and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
