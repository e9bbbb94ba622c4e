// Package ed25519 provides a field backend over GF(2^255-19), the base field of
// Curve25519, built on filippo.io/edwards25519/field.
package ed25519

import (
	"fmt"
	"math"
	"math/big"

	"filippo.io/edwards25519/field"

	ecfield "github.com/athanorlabs/go-ecmath/field"
	"github.com/athanorlabs/go-ecmath/types"
)

var _ types.Element[*FieldElement] = &FieldElement{}

// Prime is 2^255 - 19.
var Prime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

// FieldElement is an element of GF(2^255-19). The inner element is never
// modified once wrapped.
type FieldElement struct {
	inner *field.Element
}

// NewFieldElement returns value as a field element. value must be in [0, p).
func NewFieldElement(value *big.Int) (*FieldElement, error) {
	if value.Sign() < 0 || value.Cmp(Prime) >= 0 {
		return nil, types.NewError(types.ErrRange,
			fmt.Sprintf("value %s is out of range for GF(2^255-19)", value))
	}

	var b [32]byte
	value.FillBytes(b[:])
	reverse(b[:])

	inner, err := new(field.Element).SetBytes(b[:])
	if err != nil {
		return nil, err
	}

	return &FieldElement{inner: inner}, nil
}

func (e *FieldElement) Add(o *FieldElement) (*FieldElement, error) {
	return &FieldElement{inner: new(field.Element).Add(e.inner, o.inner)}, nil
}

func (e *FieldElement) Sub(o *FieldElement) (*FieldElement, error) {
	return &FieldElement{inner: new(field.Element).Subtract(e.inner, o.inner)}, nil
}

func (e *FieldElement) Mul(o *FieldElement) (*FieldElement, error) {
	return &FieldElement{inner: new(field.Element).Multiply(e.inner, o.inner)}, nil
}

func (e *FieldElement) Div(o *FieldElement) (*FieldElement, error) {
	if o.IsZero() {
		return nil, types.NewError(types.ErrDivisionByZero, "division by zero in GF(2^255-19)")
	}

	inv := new(field.Element).Invert(o.inner)
	return &FieldElement{inner: inv.Multiply(inv, e.inner)}, nil
}

func (e *FieldElement) Neg() *FieldElement {
	return &FieldElement{inner: new(field.Element).Negate(e.inner)}
}

func (e *FieldElement) Pow(exp *big.Int) *FieldElement {
	one := &FieldElement{inner: new(field.Element).One()}

	// Exp only fails across fields or for negative exponents
	r, _ := ecfield.Exp(one, e, ecfield.ReduceExponent(exp, Prime))
	return r
}

func (e *FieldElement) Scale(k uint64) *FieldElement {
	if k <= math.MaxUint32 {
		return &FieldElement{inner: new(field.Element).Mult32(e.inner, uint32(k))}
	}

	s, _ := NewFieldElement(new(big.Int).SetUint64(k))
	r, _ := e.Mul(s)
	return r
}

func (e *FieldElement) IsZero() bool {
	return e.inner.Equal(new(field.Element).Zero()) == 1
}

func (e *FieldElement) Equal(o *FieldElement) bool {
	return e.inner.Equal(o.inner) == 1
}

func (e *FieldElement) Order() *big.Int {
	return new(big.Int).Set(Prime)
}

func (e *FieldElement) Value() *big.Int {
	b := e.inner.Bytes()
	reverse(b)
	return new(big.Int).SetBytes(b)
}

func (e *FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", Prime, e.Value())
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
