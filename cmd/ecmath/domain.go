package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-ecmath"
	"github.com/athanorlabs/go-ecmath/field"
	"github.com/athanorlabs/go-ecmath/secp256k1"
	"github.com/athanorlabs/go-ecmath/types"
)

// domain is the subset of curve operations the commands need, independent of
// the field backend.
type domain interface {
	Name() string
	Generator() string
	Validate() error
	Mul(k *big.Int) (string, error)
	Check(x, y *big.Int) (string, error)
}

type curveDomain[E types.Element[E]] struct {
	name     string
	g        *ecmath.Point[E]
	newPoint func(x, y *big.Int) (*ecmath.Point[E], error)
	validate func() error
}

func (d *curveDomain[E]) Name() string {
	return d.name
}

func (d *curveDomain[E]) Generator() string {
	return d.g.String()
}

func (d *curveDomain[E]) Validate() error {
	return d.validate()
}

func (d *curveDomain[E]) Mul(k *big.Int) (string, error) {
	p, err := d.g.ScalarMult(k)
	if err != nil {
		return "", err
	}

	return p.String(), nil
}

func (d *curveDomain[E]) Check(x, y *big.Int) (string, error) {
	p, err := d.newPoint(x, y)
	if err != nil {
		return "", err
	}

	return p.String(), nil
}

func newS256Domain() domain {
	d := secp256k1.S256()
	return &curveDomain[*field.Big]{
		name:     "secp256k1",
		g:        d.Generator(),
		newPoint: d.NewPoint,
		validate: d.Validate,
	}
}

const (
	toyOrder = 223
	toyGx    = 47
	toyGy    = 71
	toyN     = 21
)

// newToyDomain returns y^2 = x^3 + 7 over F_223 with a generator of order 21.
func newToyDomain() (domain, error) {
	a, err := field.NewUint64(0, toyOrder)
	if err != nil {
		return nil, err
	}

	b, err := field.NewUint64(7, toyOrder)
	if err != nil {
		return nil, err
	}

	newPoint := func(x, y *big.Int) (*ecmath.Point[field.Uint64], error) {
		if !x.IsUint64() || !y.IsUint64() {
			return nil, types.NewError(types.ErrRange,
				fmt.Sprintf("coordinates (%s, %s) are out of range for F_%d", x, y, toyOrder))
		}

		fx, err := field.NewUint64(x.Uint64(), toyOrder)
		if err != nil {
			return nil, err
		}

		fy, err := field.NewUint64(y.Uint64(), toyOrder)
		if err != nil {
			return nil, err
		}

		return ecmath.NewPoint(ecmath.Finite(fx), ecmath.Finite(fy), a, b)
	}

	g, err := newPoint(big.NewInt(toyGx), big.NewInt(toyGy))
	if err != nil {
		return nil, err
	}

	n := big.NewInt(toyN)
	return &curveDomain[field.Uint64]{
		name:     "toy223",
		g:        g,
		newPoint: newPoint,
		validate: func() error { return ecmath.CheckOrder(g, n) },
	}, nil
}

// errorKind extracts the kind of a field or curve error, if any.
func errorKind(err error) (types.ErrorKind, bool) {
	var kind types.ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}

	return "", false
}
