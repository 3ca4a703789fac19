package fcmp

import (
	"encoding/hex"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPedersenGens(t *testing.T) {
	assert := assert.New(t)

	pg, err := NewPedersenGens()
	require.NoError(t, err)
	assert.Equal("5866666666666666666666666666666666666666666666666666666666666666", hex.EncodeToString(pg.B.Bytes()))
	assert.Equal("ffce69bec0aecba8efd2f06d968573c2698dc94b3c2f759031f2621b12b352ec", hex.EncodeToString(pg.BBlinding.Bytes()))

	// Callers get their own copy of H.
	pg.BBlinding.Set(edwards25519.NewIdentityPoint())
	again, err := NewPedersenGens()
	require.NoError(t, err)
	assert.Equal("ffce69bec0aecba8efd2f06d968573c2698dc94b3c2f759031f2621b12b352ec", hex.EncodeToString(again.BBlinding.Bytes()))
}

func TestPedersenCommit(t *testing.T) {
	assert := assert.New(t)
	Cleanup()

	c1, err := PedersenCommit(ScalarFromUint64(42), ScalarFromUint64(1))
	assert.Nil(err)
	assert.Equal("8ca4e8ef2945091052766dedd4de7ae51c0070a7f4708daa4c4da49b771a5c2b", hex.EncodeToString(c1[:]))

	again, err := PedersenCommit(ScalarFromUint64(42), ScalarFromUint64(1))
	assert.Nil(err)
	assert.Equal(c1, again)

	c2, err := PedersenCommit(ScalarFromUint64(42), ScalarFromUint64(2))
	assert.Nil(err)
	assert.Equal("8fcbc411ffce3bee0a1068e63f45795d9368dceb1744c973795e945fb502b43b", hex.EncodeToString(c2[:]))
	assert.NotEqual(c1, c2)

	zero, err := PedersenCommit(Scalar{}, Scalar{})
	assert.Nil(err)
	assert.Equal(Point{1}, zero)

	one, err := PedersenCommit(ScalarFromUint64(1), Scalar{})
	assert.Nil(err)
	assert.Equal(Basepoint(), one)

	_, err = PedersenCommit(hexScalar(t, orderHex), ScalarFromUint64(1))
	assert.ErrorIs(err, ErrInvalidScalar)
	_, err = PedersenCommit(ScalarFromUint64(1), hexScalar(t, orderHex))
	assert.ErrorIs(err, ErrInvalidScalar)
}

func TestPedersenCommitHomomorphic(t *testing.T) {
	assert := assert.New(t)

	v1, v2 := ScalarFromUint64(1000), ScalarFromUint64(234)
	r1, err := RandomScalar()
	require.NoError(t, err)
	r2, err := RandomScalar()
	require.NoError(t, err)

	c1, err := PedersenCommit(v1, r1)
	assert.Nil(err)
	c2, err := PedersenCommit(v2, r2)
	assert.Nil(err)
	sum, err := PointAdd(c1, c2)
	assert.Nil(err)

	v, err := ScalarAdd(v1, v2)
	assert.Nil(err)
	r, err := ScalarAdd(r1, r2)
	assert.Nil(err)
	c, err := PedersenCommit(v, r)
	assert.Nil(err)
	assert.Equal(c, sum)
	assert.Equal(ScalarFromUint64(1234), v)
}
