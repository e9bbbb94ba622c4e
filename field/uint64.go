package field

import (
	"math/big"
	"math/bits"
	"strconv"

	"github.com/athanorlabs/go-ecmath/types"
)

var _ types.Element[Uint64] = Uint64{}

// Uint64 is a field element whose order fits in a machine word. Products are
// formed in a 128-bit intermediate and sums track their carry, so any order up
// to 2^64-1 is handled without overflow.
type Uint64 struct {
	value, order uint64
}

// NewUint64 returns value as an element of the field of the given order.
// value must be strictly less than order.
func NewUint64(value, order uint64) (Uint64, error) {
	if order < 2 || value >= order {
		return Uint64{}, errRange(u64(value), u64(order))
	}

	return Uint64{value: value, order: order}, nil
}

func (e Uint64) Add(o Uint64) (Uint64, error) {
	if e.order != o.order {
		return Uint64{}, errOrderMismatch("add", u64(e.order), u64(o.order))
	}

	return e.with(addMod(e.value, o.value, e.order)), nil
}

func (e Uint64) Sub(o Uint64) (Uint64, error) {
	if e.order != o.order {
		return Uint64{}, errOrderMismatch("subtract", u64(e.order), u64(o.order))
	}

	return e.with(subMod(e.value, o.value, e.order)), nil
}

func (e Uint64) Mul(o Uint64) (Uint64, error) {
	if e.order != o.order {
		return Uint64{}, errOrderMismatch("multiply", u64(e.order), u64(o.order))
	}

	return e.with(mulMod(e.value, o.value, e.order)), nil
}

// Div multiplies e by o^(order-2), the inverse of o for a prime order.
func (e Uint64) Div(o Uint64) (Uint64, error) {
	if e.order != o.order {
		return Uint64{}, errOrderMismatch("divide", u64(e.order), u64(o.order))
	}
	if o.IsZero() {
		return Uint64{}, errDivisionByZero(u64(e.order))
	}

	inv := expMod(o.value, e.order-2, e.order)
	return e.with(mulMod(e.value, inv, e.order)), nil
}

func (e Uint64) Neg() Uint64 {
	return e.with(subMod(0, e.value, e.order))
}

// Pow returns e^exp, reducing exp modulo order-1 first; negative exponents
// are allowed.
func (e Uint64) Pow(exp *big.Int) Uint64 {
	r := ReduceExponent(exp, e.Order())
	return e.with(expMod(e.value, r.Uint64(), e.order))
}

// Scale returns k*e, the k-fold sum of e.
func (e Uint64) Scale(k uint64) Uint64 {
	return e.with(mulMod(e.value, k%e.order, e.order))
}

func (e Uint64) IsZero() bool {
	return e.value == 0
}

func (e Uint64) Equal(o Uint64) bool {
	return e.value == o.value && e.order == o.order
}

// Order returns the field order as a new big.Int.
func (e Uint64) Order() *big.Int {
	return new(big.Int).SetUint64(e.order)
}

func (e Uint64) Value() *big.Int {
	return new(big.Int).SetUint64(e.value)
}

// Uint64 returns the residue as a machine word.
func (e Uint64) Uint64() uint64 {
	return e.value
}

func (e Uint64) String() string {
	return render(u64(e.order), u64(e.value))
}

func (e Uint64) with(v uint64) Uint64 {
	return Uint64{value: v, order: e.order}
}

// addMod requires a, b < m.
func addMod(a, b, m uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= m {
		s -= m
	}
	return s
}

// subMod requires a, b < m.
func subMod(a, b, m uint64) uint64 {
	if a >= b {
		return a - b
	}
	return m - (b - a)
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

func expMod(base, exp, m uint64) uint64 {
	result := 1 % m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}

type u64 uint64

func (v u64) String() string {
	return strconv.FormatUint(uint64(v), 10)
}
