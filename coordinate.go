package ecmath

import (
	"github.com/athanorlabs/go-ecmath/types"
)

// Coordinate is either a finite field element or the point at infinity. The
// point at infinity is a distinct variant and never a field value.
type Coordinate[E types.Element[E]] struct {
	value  E
	finite bool
}

// Finite wraps a field element as a coordinate.
func Finite[E types.Element[E]](v E) Coordinate[E] {
	return Coordinate[E]{value: v, finite: true}
}

// Infinity returns the coordinate of the point at infinity.
func Infinity[E types.Element[E]]() Coordinate[E] {
	return Coordinate[E]{}
}

// IsInfinity reports whether c is the point at infinity.
func (c Coordinate[E]) IsInfinity() bool {
	return !c.finite
}

// Value returns the field element and true, or the zero E and false for the
// point at infinity.
func (c Coordinate[E]) Value() (E, bool) {
	return c.value, c.finite
}

// Equal reports whether both coordinates are infinite or both hold equal
// field elements.
func (c Coordinate[E]) Equal(o Coordinate[E]) bool {
	if !c.finite || !o.finite {
		return c.finite == o.finite
	}

	return c.value.Equal(o.value)
}

func (c Coordinate[E]) String() string {
	if !c.finite {
		return "Infinity"
	}

	return c.value.String()
}
