package fcmp

import (
	"encoding/binary"
	"fmt"

	"filippo.io/edwards25519"
)

func decodeScalar(buf []byte) (*edwards25519.Scalar, error) {
	if len(buf) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar length %d", ErrInvalidParam, len(buf))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	return s, nil
}

func decodePoint(buf []byte) (*edwards25519.Point, error) {
	if len(buf) != PointSize {
		return nil, fmt.Errorf("%w: point length %d", ErrInvalidParam, len(buf))
	}
	p, err := new(edwards25519.Point).SetBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return p, nil
}

// fromBytesModOrderWide reduces up to 64 little-endian bytes modulo l.
func fromBytesModOrderWide(data []byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], data)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic(err)
	}
	wipe(wide[:])
	return s
}

func uint64ToScalar(i uint64) *edwards25519.Scalar {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return s
}

func multiscalarMul(scalars []*edwards25519.Scalar, points []*edwards25519.Point) *edwards25519.Point {
	// MultiScalarMult accumulates into its receiver, which must start as the identity.
	return edwards25519.NewIdentityPoint().MultiScalarMult(scalars, points)
}

func zeroScalar(s *edwards25519.Scalar) {
	if s != nil {
		s.Set(edwards25519.NewScalar())
	}
}

func wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
