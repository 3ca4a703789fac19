package fcmp

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

// LayerGens holds the vector generators used to commit to branch layers.
type LayerGens struct {
	GensCapacity int
	GVec         []*edwards25519.Point
}

func NewLayerGens(gensCapacity int) *LayerGens {
	g := &LayerGens{}
	g.IncreaseCapacity(gensCapacity)
	return g
}

func (g *LayerGens) IncreaseCapacity(capacity int) {
	if g.GensCapacity >= capacity {
		return
	}
	chain := NewGeneratorsChain([]byte(LAYER_GENERATORS_LABEL))
	chain.FastForward(g.GensCapacity)
	for i := g.GensCapacity; i < capacity; i++ {
		g.GVec = append(g.GVec, chain.Next())
	}
	g.GensCapacity = capacity
}

// G returns the first n generators.
func (g *LayerGens) G(n int) []*edwards25519.Point {
	return g.GVec[:n]
}

// Commit computes sum(values[i] * G_i) + blinding * h.
func (g *LayerGens) Commit(h *edwards25519.Point, values []*edwards25519.Scalar, blinding *edwards25519.Scalar) *edwards25519.Point {
	scalars := make([]*edwards25519.Scalar, 0, len(values)+1)
	scalars = append(scalars, values...)
	scalars = append(scalars, blinding)

	points := make([]*edwards25519.Point, 0, len(values)+1)
	points = append(points, g.G(len(values))...)
	points = append(points, h)
	return multiscalarMul(scalars, points)
}

type GeneratorsChain struct {
	sha3.ShakeHash
}

func NewGeneratorsChain(label []byte) *GeneratorsChain {
	h := sha3.NewShake256()
	h.Write([]byte("GeneratorsChain"))
	h.Write(label)
	return &GeneratorsChain{h}
}

func (c *GeneratorsChain) FastForward(n int) {
	for i := 0; i < n; i++ {
		c.Next()
	}
}

// Next reads 32-byte blocks until one decompresses to a point whose cofactor
// multiple is not the identity.
func (c *GeneratorsChain) Next() *edwards25519.Point {
	identity := edwards25519.NewIdentityPoint()
	for {
		var data [32]byte
		c.Read(data[:])
		p, err := new(edwards25519.Point).SetBytes(data[:])
		if err != nil {
			continue
		}
		q := new(edwards25519.Point).MultByCofactor(p)
		if q.Equal(identity) == 1 {
			continue
		}
		return q
	}
}
