package types

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrRange is returned when a field element value is outside [0, order).
	ErrRange = ErrorKind("ErrRange")

	// ErrOrderMismatch is returned when a binary field operation is given
	// elements of different order.
	ErrOrderMismatch = ErrorKind("ErrOrderMismatch")

	// ErrDivisionByZero is returned when dividing by the zero element.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrNotOnCurve is returned when constructing a finite point that does
	// not satisfy y^2 = x^3 + ax + b.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrInvalidPoint is returned when exactly one coordinate of a point is
	// the point at infinity.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrCurveMismatch is returned when adding points with different a or b.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrUndefinedAddition is returned when point addition falls through
	// every case. It is unreachable for points built by the constructor.
	ErrUndefinedAddition = ErrorKind("ErrUndefinedAddition")

	// ErrInvalidGenerator is returned when n*G is not the point at infinity
	// for a domain with generator G and order n.
	ErrInvalidGenerator = ErrorKind("ErrInvalidGenerator")

	// ErrNegativeScalar is returned when a scalar multiplication is asked for
	// with a negative scalar.
	ErrNegativeScalar = ErrorKind("ErrNegativeScalar")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field or curve arithmetic. It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error given a set of arguments.
func NewError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
