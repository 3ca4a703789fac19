package fcmp

import (
	"filippo.io/edwards25519"
)

// Point is a compressed Edwards-Y encoding of an ed25519 group element.
type Point [PointSize]byte

func pointFromEdwards(p *edwards25519.Point) Point {
	var out Point
	copy(out[:], p.Bytes())
	return out
}

func (p Point) edwards() (*edwards25519.Point, error) {
	return decodePoint(p[:])
}

// PointFromBytes decodes a compressed point, rejecting encodings that are not
// on the curve.
func PointFromBytes(buf []byte) (Point, error) {
	p, err := decodePoint(buf)
	if err != nil {
		return Point{}, err
	}
	return pointFromEdwards(p), nil
}

func Basepoint() Point {
	return pointFromEdwards(edwards25519.NewGeneratorPoint())
}

// PointIsValid reports whether p decompresses. Subgroup membership is not
// checked here.
func PointIsValid(p Point) bool {
	_, err := p.edwards()
	return err == nil
}

func PointAdd(a, b Point) (Point, error) {
	x, err := a.edwards()
	if err != nil {
		return Point{}, err
	}
	y, err := b.edwards()
	if err != nil {
		return Point{}, err
	}
	return pointFromEdwards(new(edwards25519.Point).Add(x, y)), nil
}

func PointMul(s Scalar, p Point) (Point, error) {
	q, err := p.edwards()
	if err != nil {
		return Point{}, err
	}
	x, err := s.edwards()
	if err != nil {
		return Point{}, err
	}
	defer zeroScalar(x)
	return pointFromEdwards(new(edwards25519.Point).ScalarMult(x, q)), nil
}
