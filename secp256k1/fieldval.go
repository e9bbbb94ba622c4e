package secp256k1

import (
	"fmt"
	"math/big"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/athanorlabs/go-ecmath"
	"github.com/athanorlabs/go-ecmath/field"
	"github.com/athanorlabs/go-ecmath/types"
)

var _ types.Element[FieldVal] = FieldVal{}

var fieldPrime = mustHex(pHex)

// FieldVal is an element of the secp256k1 base field backed by decred's
// 10x26-bit limb representation. It is always kept normalized. Since every
// FieldVal lives in the same field, its operations never report
// ErrOrderMismatch.
type FieldVal struct {
	v dcrsecp.FieldVal
}

// NewFieldVal returns value as a field element. value must be in [0, p).
func NewFieldVal(value *big.Int) (FieldVal, error) {
	if value.Sign() < 0 || value.Cmp(fieldPrime) >= 0 {
		return FieldVal{}, types.NewError(types.ErrRange,
			fmt.Sprintf("value %s is out of range for the secp256k1 field", value))
	}

	var buf [32]byte
	var f FieldVal
	f.v.SetByteSlice(value.FillBytes(buf[:]))
	f.v.Normalize()
	return f, nil
}

func (e FieldVal) Add(o FieldVal) (FieldVal, error) {
	var r FieldVal
	r.v.Add2(&e.v, &o.v).Normalize()
	return r, nil
}

func (e FieldVal) Sub(o FieldVal) (FieldVal, error) {
	var r FieldVal
	r.v.NegateVal(&o.v, 1).Add(&e.v).Normalize()
	return r, nil
}

func (e FieldVal) Mul(o FieldVal) (FieldVal, error) {
	var r FieldVal
	r.v.Mul2(&e.v, &o.v).Normalize()
	return r, nil
}

func (e FieldVal) Div(o FieldVal) (FieldVal, error) {
	if o.IsZero() {
		return FieldVal{}, types.NewError(types.ErrDivisionByZero,
			"division by zero in the secp256k1 field")
	}

	var r FieldVal
	r.v.Set(&o.v).Inverse().Mul(&e.v).Normalize()
	return r, nil
}

func (e FieldVal) Neg() FieldVal {
	var r FieldVal
	r.v.NegateVal(&e.v, 1).Normalize()
	return r
}

func (e FieldVal) Pow(exp *big.Int) FieldVal {
	var one FieldVal
	one.v.SetInt(1)

	// Exp only fails across fields or for negative exponents
	r, _ := field.Exp(one, e, field.ReduceExponent(exp, fieldPrime))
	return r
}

func (e FieldVal) Scale(k uint64) FieldVal {
	s, _ := NewFieldVal(new(big.Int).SetUint64(k))
	r, _ := e.Mul(s)
	return r
}

func (e FieldVal) IsZero() bool {
	return e.v.IsZero()
}

func (e FieldVal) Equal(o FieldVal) bool {
	return e.v.Equals(&o.v)
}

func (e FieldVal) Order() *big.Int {
	return new(big.Int).Set(fieldPrime)
}

func (e FieldVal) Value() *big.Int {
	return new(big.Int).SetBytes(e.v.Bytes()[:])
}

func (e FieldVal) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", fieldPrime, e.Value())
}

// FieldValGenerator returns G over the FieldVal backend.
func (d *Domain) FieldValGenerator() *ecmath.Point[FieldVal] {
	conv := func(b *field.Big) FieldVal {
		f, err := NewFieldVal(b.Value())
		if err != nil {
			panic(err)
		}
		return f
	}

	g, err := ecmath.NewPoint(ecmath.Finite(conv(d.gx)), ecmath.Finite(conv(d.gy)), conv(d.a), conv(d.b))
	if err != nil {
		panic(err)
	}

	return g
}
