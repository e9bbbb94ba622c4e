package types

import (
	"fmt"
	"math/big"
)

// Element is the capability set the curve group law is written against. Every
// field backend (fixed-width, arbitrary precision, limb based) implements it
// for its own concrete type E, so the group law never sees the representation.
//
// Elements are immutable: every operation returns a new value.
type Element[E any] interface {
	fmt.Stringer

	Add(E) (E, error)
	Sub(E) (E, error)
	Mul(E) (E, error)
	// Div returns ErrDivisionByZero when the divisor is zero.
	Div(E) (E, error)
	Neg() E
	// Pow accepts exponents of either sign; they are reduced modulo order-1.
	Pow(*big.Int) E
	Scale(uint64) E

	IsZero() bool
	Equal(E) bool
	Order() *big.Int
	Value() *big.Int
}
