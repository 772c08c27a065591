package sphgeom

import "fmt"

// InvalidArgumentError reports a call argument that violates a documented
// precondition: fewer than 3 points, or points that do not wrap into a hull,
// given to ConvexHull, and malformed IVOA POS text (including non-finite
// numbers) given to ParsePos. Constructors that return no error do not use
// it: an out-of-range pixelization level, a polygon with too few vertices or
// a compound region with too few operands makes them panic via logicError.
type InvalidArgumentError struct {
	msg string
}

// NewInvalidArgumentError builds an InvalidArgumentError with a formatted
// message.
func NewInvalidArgumentError(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{msg: fmt.Sprintf(format, args...)}
}

func (e *InvalidArgumentError) Error() string {
	return "sphgeom: invalid argument: " + e.msg
}

// DecodeError reports a failure to decode a binary or textual encoding: an
// unknown tag byte, a truncated buffer, or a payload that fails a structural
// invariant (e.g. a decoded polygon with fewer than 3 vertices).
type DecodeError struct {
	msg string
}

// NewDecodeError builds a DecodeError with a formatted message.
func NewDecodeError(format string, args ...any) *DecodeError {
	return &DecodeError{msg: fmt.Sprintf(format, args...)}
}

func (e *DecodeError) Error() string {
	return "sphgeom: decode error: " + e.msg
}

// NotImplementedError reports a requested operation that is well-defined by
// the interface but not available for the receiver: WritePos on a region
// kind, or an empty region, with no IVOA POS representation.
type NotImplementedError struct {
	msg string
}

// NewNotImplementedError builds a NotImplementedError with a formatted
// message.
func NewNotImplementedError(format string, args ...any) *NotImplementedError {
	return &NotImplementedError{msg: fmt.Sprintf(format, args...)}
}

func (e *NotImplementedError) Error() string {
	return "sphgeom: not implemented: " + e.msg
}

// logicError panics with a formatted message. Constructors call it on
// arguments that break their preconditions (an out-of-range pixelization
// level or index, too few polygon vertices or compound operands,
// non-positive chunker counts), and other code calls it on input it cannot
// handle (normalizing the zero vector, inverting a singular matrix, a
// degenerate HTM or HEALPix pixel).
func logicError(format string, args ...any) {
	panic("sphgeom: logic error: " + fmt.Sprintf(format, args...))
}
