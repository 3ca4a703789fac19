package fcmp

import (
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/dchest/blake2b"
)

// HashToScalar reduces the first 32 bytes of Blake2b-512(data) modulo l.
func HashToScalar(data []byte) Scalar {
	digest := blake2b.Sum512(data)
	return scalarFromEdwards(fromBytesModOrderWide(digest[:ScalarSize]))
}

// HashToPoint maps data into the prime-order subgroup. The first of up to 256
// candidates Blake2b-512(seed || i)[:32] that decompresses is multiplied by
// the cofactor.
func HashToPoint(data []byte) (Point, error) {
	p, err := hashToPoint(data)
	if err != nil {
		return Point{}, err
	}
	return pointFromEdwards(p), nil
}

func hashToPoint(data []byte) (*edwards25519.Point, error) {
	hash := blake2b.New512()
	hash.Write([]byte(HASH_TO_POINT_DOMAIN_TAG))
	hash.Write(data)
	seed := hash.Sum(nil)

	for i := 0; i < HashToPointAttempts; i++ {
		attempt := blake2b.New512()
		attempt.Write(seed)
		attempt.Write([]byte{byte(i)})
		candidate := attempt.Sum(nil)

		p, err := new(edwards25519.Point).SetBytes(candidate[:PointSize])
		if err != nil {
			continue
		}
		return new(edwards25519.Point).MultByCofactor(p), nil
	}
	return nil, fmt.Errorf("%w: hash to point exhausted %d attempts", ErrInternal, HashToPointAttempts)
}

// fieldElementFromHalf follows the host tree's reduction of a 16-byte half of
// a compressed point: SHA-512 of the half, reduced modulo l.
func fieldElementFromHalf(half []byte) *edwards25519.Scalar {
	digest := sha512.Sum512(half)
	s, err := edwards25519.NewScalar().SetUniformBytes(digest[:])
	if err != nil {
		panic(err)
	}
	return s
}
