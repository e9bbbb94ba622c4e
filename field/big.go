package field

import (
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-ecmath/types"
)

var _ types.Element[*Big] = &Big{}

// Big is an arbitrary-precision field element. The value and order are never
// mutated after construction, so a *Big may be shared freely.
type Big struct {
	value, order *big.Int
}

// NewBig returns value as an element of the field of the given order. Both
// arguments are copied; value must be in [0, order).
func NewBig(value, order *big.Int) (*Big, error) {
	if order.Cmp(big.NewInt(2)) < 0 || value.Sign() < 0 || value.Cmp(order) >= 0 {
		return nil, errRange(value, order)
	}

	return &Big{
		value: new(big.Int).Set(value),
		order: new(big.Int).Set(order),
	}, nil
}

// NewBigFromUint64 is NewBig for word-sized values.
func NewBigFromUint64(value uint64, order *big.Int) (*Big, error) {
	return NewBig(new(big.Int).SetUint64(value), order)
}

// BigFromHex parses a hexadecimal value and order, without any 0x prefix.
func BigFromHex(value, order string) (*Big, error) {
	v, ok := new(big.Int).SetString(value, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex value %q", value)
	}

	o, ok := new(big.Int).SetString(order, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex order %q", order)
	}

	return NewBig(v, o)
}

func (e *Big) Add(o *Big) (*Big, error) {
	if e.order.Cmp(o.order) != 0 {
		return nil, errOrderMismatch("add", e.order, o.order)
	}

	return e.reduce(new(big.Int).Add(e.value, o.value)), nil
}

func (e *Big) Sub(o *Big) (*Big, error) {
	if e.order.Cmp(o.order) != 0 {
		return nil, errOrderMismatch("subtract", e.order, o.order)
	}

	return e.reduce(new(big.Int).Sub(e.value, o.value)), nil
}

func (e *Big) Mul(o *Big) (*Big, error) {
	if e.order.Cmp(o.order) != 0 {
		return nil, errOrderMismatch("multiply", e.order, o.order)
	}

	return e.reduce(new(big.Int).Mul(e.value, o.value)), nil
}

// Div multiplies e by o^(order-2), the inverse of o for a prime order.
func (e *Big) Div(o *Big) (*Big, error) {
	if e.order.Cmp(o.order) != 0 {
		return nil, errOrderMismatch("divide", e.order, o.order)
	}
	if o.IsZero() {
		return nil, errDivisionByZero(e.order)
	}

	exp := new(big.Int).Sub(e.order, big.NewInt(2))
	inv := new(big.Int).Exp(o.value, exp, e.order)
	return e.reduce(inv.Mul(inv, e.value)), nil
}

func (e *Big) Neg() *Big {
	return e.reduce(new(big.Int).Neg(e.value))
}

func (e *Big) Pow(exp *big.Int) *Big {
	r := ReduceExponent(exp, e.order)
	return &Big{
		value: new(big.Int).Exp(e.value, r, e.order),
		order: e.order,
	}
}

func (e *Big) Scale(k uint64) *Big {
	return e.reduce(new(big.Int).Mul(e.value, new(big.Int).SetUint64(k)))
}

func (e *Big) IsZero() bool {
	return e.value.Sign() == 0
}

func (e *Big) Equal(o *Big) bool {
	return e.value.Cmp(o.value) == 0 && e.order.Cmp(o.order) == 0
}

func (e *Big) Order() *big.Int {
	return new(big.Int).Set(e.order)
}

func (e *Big) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

func (e *Big) String() string {
	return render(e.order, e.value)
}

// reduce takes ownership of v.
func (e *Big) reduce(v *big.Int) *Big {
	return &Big{
		value: v.Mod(v, e.order),
		order: e.order,
	}
}
