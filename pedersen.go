package fcmp

import (
	"sync"

	"filippo.io/edwards25519"
)

// pedersenH is H = HashToPoint(PEDERSEN_H_DOMAIN_TAG), derived on first use.
var pedersenH = sync.OnceValues(func() (*edwards25519.Point, error) {
	return hashToPoint([]byte(PEDERSEN_H_DOMAIN_TAG))
})

type PedersenGens struct {
	B         *edwards25519.Point
	BBlinding *edwards25519.Point
}

func NewPedersenGens() (*PedersenGens, error) {
	h, err := pedersenH()
	if err != nil {
		return nil, err
	}
	return &PedersenGens{
		B:         edwards25519.NewGeneratorPoint(),
		BBlinding: new(edwards25519.Point).Set(h),
	}, nil
}

// Commit returns value*B + blinding*BBlinding.
func (pg *PedersenGens) Commit(value, blinding *edwards25519.Scalar) *edwards25519.Point {
	return multiscalarMul([]*edwards25519.Scalar{value, blinding}, []*edwards25519.Point{pg.B, pg.BBlinding})
}

func PedersenCommit(value, blinding Scalar) (Point, error) {
	v, err := value.edwards()
	if err != nil {
		return Point{}, err
	}
	defer zeroScalar(v)
	r, err := blinding.edwards()
	if err != nil {
		return Point{}, err
	}
	defer zeroScalar(r)

	pg, err := NewPedersenGens()
	if err != nil {
		return Point{}, err
	}
	return pointFromEdwards(pg.Commit(v, r)), nil
}
