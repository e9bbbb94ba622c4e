// Package field implements prime field backends satisfying types.Element.
//
// Uint64 covers toy and teaching curves whose order fits a machine word, Big
// covers production fields such as the 256-bit secp256k1 prime. Both perform
// every reduction with a Euclidean (always non-negative) remainder.
package field

import (
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-ecmath/types"
)

var bigOne = big.NewInt(1)

// ReduceExponent returns e mod (order-1) as a representative in
// [0, order-1). For a prime order the multiplicative group has order-1
// elements, so any exponent of either sign can be replaced by it.
func ReduceExponent(e, order *big.Int) *big.Int {
	m := new(big.Int).Sub(order, bigOne)
	if m.Sign() <= 0 {
		return new(big.Int)
	}

	return new(big.Int).Mod(e, m)
}

// Exp computes base^e for e >= 0 by binary square-and-multiply, scanning e from
// the least significant bit. It is used by backends without a native modular
// exponentiation; one must be the multiplicative identity of base's field.
func Exp[E types.Element[E]](one, base E, e *big.Int) (E, error) {
	if e.Sign() < 0 {
		return one, fmt.Errorf("exponent %s must be non-negative", e)
	}

	var err error
	result := one
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			result, err = result.Mul(base)
			if err != nil {
				return one, err
			}
		}

		base, err = base.Mul(base)
		if err != nil {
			return one, err
		}
	}

	return result, nil
}

func errOrderMismatch(op string, a, b fmt.Stringer) error {
	return types.NewError(types.ErrOrderMismatch,
		fmt.Sprintf("cannot %s elements of order %s and %s", op, a, b))
}

func errDivisionByZero(order fmt.Stringer) error {
	return types.NewError(types.ErrDivisionByZero,
		fmt.Sprintf("division by zero in field of order %s", order))
}

func errRange(value, order fmt.Stringer) error {
	return types.NewError(types.ErrRange,
		fmt.Sprintf("value %s is out of range for field of order %s", value, order))
}

func render(order, value fmt.Stringer) string {
	return fmt.Sprintf("FieldElement_%s(%s)", order, value)
}
