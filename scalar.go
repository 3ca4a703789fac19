package fcmp

import (
	"crypto/rand"
	"fmt"
	"io"

	"filippo.io/edwards25519"
)

// Scalar is the canonical little-endian encoding of an element of the
// ed25519 scalar field.
type Scalar [ScalarSize]byte

var entropy io.Reader = rand.Reader

func scalarFromEdwards(s *edwards25519.Scalar) Scalar {
	var out Scalar
	copy(out[:], s.Bytes())
	return out
}

// ScalarFromUint64 encodes a small integer as a scalar.
func ScalarFromUint64(i uint64) Scalar {
	return scalarFromEdwards(uint64ToScalar(i))
}

// ScalarFromBytes rejects anything that is not a canonical 32-byte encoding.
func ScalarFromBytes(buf []byte) (Scalar, error) {
	s, err := decodeScalar(buf)
	if err != nil {
		return Scalar{}, err
	}
	return scalarFromEdwards(s), nil
}

func (s *Scalar) Zeroize() {
	wipe(s[:])
}

func (s Scalar) edwards() (*edwards25519.Scalar, error) {
	return decodeScalar(s[:])
}

// RandomScalar draws 64 bytes of entropy and reduces them modulo l.
func RandomScalar() (Scalar, error) {
	s, err := randomEdwardsScalar()
	if err != nil {
		return Scalar{}, err
	}
	defer zeroScalar(s)
	return scalarFromEdwards(s), nil
}

func randomEdwardsScalar() (*edwards25519.Scalar, error) {
	var wide [64]byte
	defer wipe(wide[:])
	if _, err := io.ReadFull(entropy, wide[:]); err != nil {
		return nil, fmt.Errorf("%w: entropy source: %v", ErrInternal, err)
	}
	return fromBytesModOrderWide(wide[:]), nil
}

func ScalarAdd(a, b Scalar) (Scalar, error) {
	x, err := a.edwards()
	if err != nil {
		return Scalar{}, err
	}
	y, err := b.edwards()
	if err != nil {
		return Scalar{}, err
	}
	return scalarFromEdwards(edwards25519.NewScalar().Add(x, y)), nil
}

func ScalarMul(a, b Scalar) (Scalar, error) {
	x, err := a.edwards()
	if err != nil {
		return Scalar{}, err
	}
	y, err := b.edwards()
	if err != nil {
		return Scalar{}, err
	}
	return scalarFromEdwards(edwards25519.NewScalar().Multiply(x, y)), nil
}
