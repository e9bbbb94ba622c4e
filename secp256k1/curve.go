// Package secp256k1 instantiates the generic group law with the secp256k1
// domain parameters from SEC 2.
package secp256k1

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"sync"

	"github.com/athanorlabs/go-ecmath"
	"github.com/athanorlabs/go-ecmath/field"
)

const (
	pHex  = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	aHex  = "0000000000000000000000000000000000000000000000000000000000000000"
	bHex  = "0000000000000000000000000000000000000000000000000000000000000007"
	gxHex = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gyHex = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	nHex  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

type Point = ecmath.Point[*field.Big]

// Domain holds the parameters (p, a, b, G, n) of a curve. It is read-only.
type Domain struct {
	p, n   *big.Int
	a, b   *field.Big
	gx, gy *field.Big
}

var (
	s256     *Domain
	s256Once sync.Once
)

// S256 returns the secp256k1 domain, parsed once from its hex literals.
func S256() *Domain {
	s256Once.Do(func() {
		p := mustHex(pHex)
		s256 = &Domain{
			p:  p,
			n:  mustHex(nHex),
			a:  mustElement(aHex, p),
			b:  mustElement(bHex, p),
			gx: mustElement(gxHex, p),
			gy: mustElement(gyHex, p),
		}
	})

	return s256
}

// P returns the field prime.
func (d *Domain) P() *big.Int {
	return new(big.Int).Set(d.p)
}

// N returns the order of the subgroup generated by G.
func (d *Domain) N() *big.Int {
	return new(big.Int).Set(d.n)
}

func (d *Domain) A() *field.Big {
	return d.a
}

func (d *Domain) B() *field.Big {
	return d.b
}

// Generator returns G. The point goes through the validating constructor, so
// a bad literal panics here.
func (d *Domain) Generator() *Point {
	g, err := ecmath.NewPoint(ecmath.Finite(d.gx), ecmath.Finite(d.gy), d.a, d.b)
	if err != nil {
		panic(err)
	}

	return g
}

// Infinity returns the identity of the group.
func (d *Domain) Infinity() *Point {
	inf, err := ecmath.NewInfinity(d.a, d.b)
	if err != nil {
		panic(err)
	}

	return inf
}

// NewPoint validates externally supplied affine coordinates.
func (d *Domain) NewPoint(x, y *big.Int) (*Point, error) {
	fx, err := field.NewBig(x, d.p)
	if err != nil {
		return nil, fmt.Errorf("invalid x coordinate: %w", err)
	}

	fy, err := field.NewBig(y, d.p)
	if err != nil {
		return nil, fmt.Errorf("invalid y coordinate: %w", err)
	}

	return ecmath.NewPoint(ecmath.Finite(fx), ecmath.Finite(fy), d.a, d.b)
}

// ScalarBaseMult returns k*G.
func (d *Domain) ScalarBaseMult(k *big.Int) (*Point, error) {
	return d.Generator().ScalarMult(k)
}

// Validate checks that n*G is the point at infinity.
func (d *Domain) Validate() error {
	return ecmath.CheckOrder(d.Generator(), d.n)
}

func mustHex(s string) *big.Int {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return new(big.Int).SetBytes(b)
}

func mustElement(s string, p *big.Int) *field.Big {
	e, err := field.NewBig(mustHex(s), p)
	if err != nil {
		panic(err)
	}

	return e
}
