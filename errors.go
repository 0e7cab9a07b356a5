package xenon

import "fmt"

// ErrParseError is the error form of an EventError event.
type ErrParseError struct {
	Kind     ErrorKind
	Line     int
	Column   int
	Location int64
}

func (e ErrParseError) Error() string {
	return fmt.Sprintf(
		"%s at line %d, column %d (byte %d)",
		e.Kind,
		e.Line,
		e.Column,
		e.Location,
	)
}
