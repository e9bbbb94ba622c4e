package secp256k1

import (
	"errors"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/athanorlabs/go-ecmath/types"
)

var errInfinityPublicKey = errors.New("the point at infinity is not a valid public key")

// ToPublicKey converts a finite secp256k1 point to a decred public key.
func ToPublicKey(p *Point) (*dcrsecp.PublicKey, error) {
	if p.IsInfinity() {
		return nil, errInfinityPublicKey
	}

	d := S256()
	if !p.A().Equal(d.a) || !p.B().Equal(d.b) {
		return nil, types.NewError(types.ErrCurveMismatch, "point is not on secp256k1")
	}

	x, _ := p.X().Value()
	y, _ := p.Y().Value()

	var fx, fy dcrsecp.FieldVal
	fx.SetByteSlice(x.Value().Bytes())
	fy.SetByteSlice(y.Value().Bytes())
	return dcrsecp.NewPublicKey(&fx, &fy), nil
}

// FromPublicKey converts a decred public key to a point, validating it
// against the curve equation.
func FromPublicKey(pk *dcrsecp.PublicKey) (*Point, error) {
	return S256().NewPoint(pk.X(), pk.Y())
}
