package token

import (
	"errors"
	"fmt"
)

var ErrBadIndex = errors.New("malformed array index")

// SegmentError reports the segment that failed to tokenize and its byte
// offset in the query string.
type SegmentError struct {
	Segment string
	Offset  int
	Err     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", e.Err, e.Segment, e.Offset)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}
