// Package ecmath implements the elliptic curve group law for short Weierstrass
// curves y^2 = x^3 + ax + b, written once against types.Element so that any
// prime field backend can be plugged in.
package ecmath

import (
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-ecmath/types"
)

// Point is an affine point on the curve y^2 = x^3 + ax + b, or the point at
// infinity of that curve. Points are immutable.
type Point[E types.Element[E]] struct {
	x, y Coordinate[E]
	a, b E
}

// NewPoint returns the point (x, y) on the curve given by a and b. Both
// coordinates must be finite and satisfy the curve equation, or both must be
// infinite.
func NewPoint[E types.Element[E]](x, y Coordinate[E], a, b E) (*Point[E], error) {
	if err := checkCurve(a, b); err != nil {
		return nil, err
	}

	switch {
	case x.IsInfinity() && y.IsInfinity():
		return &Point[E]{x: x, y: y, a: a, b: b}, nil
	case x.IsInfinity() || y.IsInfinity():
		return nil, types.NewError(types.ErrInvalidPoint,
			fmt.Sprintf("point (%s, %s) mixes a finite and an infinite coordinate", x, y))
	}

	order := a.Order()
	if x.value.Order().Cmp(order) != 0 || y.value.Order().Cmp(order) != 0 {
		return nil, types.NewError(types.ErrOrderMismatch,
			fmt.Sprintf("point (%s, %s) is not in the field of the curve coefficients %s and %s", x, y, a, b))
	}

	ok, err := IsOnCurve(x.value, y.value, a, b)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate curve equation: %w", err)
	}

	if !ok {
		return nil, types.NewError(types.ErrNotOnCurve,
			fmt.Sprintf("point (%s, %s) is not on the curve y^2 = x^3 + %s*x + %s", x, y, a, b))
	}

	return &Point[E]{x: x, y: y, a: a, b: b}, nil
}

// NewInfinity returns the identity of the group of the curve given by a and b.
func NewInfinity[E types.Element[E]](a, b E) (*Point[E], error) {
	return NewPoint(Infinity[E](), Infinity[E](), a, b)
}

func checkCurve[E types.Element[E]](a, b E) error {
	if a.Order().Cmp(b.Order()) != 0 {
		return types.NewError(types.ErrOrderMismatch,
			fmt.Sprintf("curve coefficients %s and %s are in different fields", a, b))
	}

	return nil
}

// IsOnCurve reports whether y^2 = x^3 + ax + b holds.
func IsOnCurve[E types.Element[E]](x, y, a, b E) (bool, error) {
	var c calc[E]
	lhs := c.mul(y, y)
	rhs := c.add(c.add(c.mul(c.mul(x, x), x), c.mul(a, x)), b)
	if c.err != nil {
		return false, c.err
	}

	return lhs.Equal(rhs), nil
}

// X returns the x coordinate, Infinity for the identity.
func (p *Point[E]) X() Coordinate[E] {
	return p.x
}

// Y returns the y coordinate, Infinity for the identity.
func (p *Point[E]) Y() Coordinate[E] {
	return p.y
}

func (p *Point[E]) A() E {
	return p.a
}

func (p *Point[E]) B() E {
	return p.b
}

func (p *Point[E]) IsInfinity() bool {
	return p.x.IsInfinity()
}

// Equals compares the coordinates and the curve of both points.
func (p *Point[E]) Equals(q *Point[E]) bool {
	return p.x.Equal(q.x) && p.y.Equal(q.y) && p.a.Equal(q.a) && p.b.Equal(q.b)
}

// Add returns p + q. Both points must lie on the same curve.
//
// The chord and tangent formulas assume a field of characteristic other than 2
// and 3. Over F_2 doubling divides by 2y = 0 and fails with ErrDivisionByZero.
func (p *Point[E]) Add(q *Point[E]) (*Point[E], error) {
	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		return nil, types.NewError(types.ErrCurveMismatch,
			fmt.Sprintf("cannot add points on curves (a=%s, b=%s) and (a=%s, b=%s)", p.a, p.b, q.a, q.b))
	}

	switch {
	case p.IsInfinity() && q.IsInfinity():
		return p, nil
	case p.IsInfinity():
		return q, nil
	case q.IsInfinity():
		return p, nil
	}

	x1, y1 := p.x.value, p.y.value
	x2, y2 := q.x.value, q.y.value

	switch {
	case x1.Equal(x2) && !y1.Equal(y2):
		// q == -p
		return p.infinity(), nil
	case !x1.Equal(x2):
		var c calc[E]
		s := c.div(c.sub(y2, y1), c.sub(x2, x1))
		x3 := c.sub(c.sub(c.mul(s, s), x1), x2)
		y3 := c.sub(c.mul(s, c.sub(x1, x3)), y1)
		return p.finite(x3, y3, c.err)
	case !y1.IsZero():
		var c calc[E]
		s := c.div(c.add(c.mul(x1, x1).Scale(3), p.a), y1.Scale(2))
		x3 := c.sub(c.mul(s, s), x1.Scale(2))
		y3 := c.sub(c.mul(s, c.sub(x1, x3)), y1)
		return p.finite(x3, y3, c.err)
	case y1.IsZero():
		// vertical tangent
		return p.infinity(), nil
	}

	return nil, types.NewError(types.ErrUndefinedAddition,
		fmt.Sprintf("addition of %s and %s is undefined", p, q))
}

// Double returns p + p.
func (p *Point[E]) Double() (*Point[E], error) {
	return p.Add(p)
}

// Neg returns the inverse of p, which is (x, -y).
func (p *Point[E]) Neg() *Point[E] {
	if p.IsInfinity() {
		return p
	}

	return &Point[E]{x: p.x, y: Finite(p.y.value.Neg()), a: p.a, b: p.b}
}

// ScalarMult returns k*p using double-and-add over the bits of k, least
// significant first. k must be non-negative; zero gives the point at infinity.
func (p *Point[E]) ScalarMult(k *big.Int) (*Point[E], error) {
	if k.Sign() < 0 {
		return nil, types.NewError(types.ErrNegativeScalar,
			fmt.Sprintf("scalar %s is negative", k))
	}

	var err error
	result, current := p.infinity(), p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result, err = result.Add(current)
			if err != nil {
				return nil, err
			}
		}

		current, err = current.Double()
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// CheckOrder returns ErrInvalidGenerator unless n*g is the point at infinity.
func CheckOrder[E types.Element[E]](g *Point[E], n *big.Int) error {
	ng, err := g.ScalarMult(n)
	if err != nil {
		return err
	}

	if !ng.IsInfinity() {
		return types.NewError(types.ErrInvalidGenerator,
			fmt.Sprintf("%s*%s = %s, want the point at infinity", n, g, ng))
	}

	return nil
}

func (p *Point[E]) String() string {
	return fmt.Sprintf("Point(%s, %s)_a:%s_b:%s", p.x, p.y, p.a, p.b)
}

func (p *Point[E]) infinity() *Point[E] {
	return &Point[E]{x: Infinity[E](), y: Infinity[E](), a: p.a, b: p.b}
}

func (p *Point[E]) finite(x, y E, err error) (*Point[E], error) {
	if err != nil {
		return nil, fmt.Errorf("failed to add points: %w", err)
	}

	return &Point[E]{x: Finite(x), y: Finite(y), a: p.a, b: p.b}, nil
}

// calc chains field operations, keeping the first error and turning every
// later operation into a no-op.
type calc[E types.Element[E]] struct {
	err error
}

func (c *calc[E]) add(x, y E) E { return c.do(x.Add, x, y) }
func (c *calc[E]) sub(x, y E) E { return c.do(x.Sub, x, y) }
func (c *calc[E]) mul(x, y E) E { return c.do(x.Mul, x, y) }
func (c *calc[E]) div(x, y E) E { return c.do(x.Div, x, y) }

func (c *calc[E]) do(op func(E) (E, error), x, y E) E {
	if c.err != nil {
		return x
	}

	r, err := op(y)
	if err != nil {
		c.err = err
		return x
	}

	return r
}
