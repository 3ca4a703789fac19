package fcmp

import (
	"fmt"

	"filippo.io/edwards25519"
)

// OutputTuple is a tree leaf: one-time key O, key image I and amount
// commitment C.
type OutputTuple struct {
	O, I, C Point
}

func OutputTupleFromBytes(buf []byte) (OutputTuple, error) {
	if len(buf) != OutputTupleSize {
		return OutputTuple{}, fmt.Errorf("%w: output tuple length %d", ErrInvalidParam, len(buf))
	}
	var out OutputTuple
	copy(out.O[:], buf[:PointSize])
	copy(out.I[:], buf[PointSize:2*PointSize])
	copy(out.C[:], buf[2*PointSize:])
	return out, nil
}

func (o *OutputTuple) Bytes() []byte {
	buf := make([]byte, 0, OutputTupleSize)
	buf = append(buf, o.O[:]...)
	buf = append(buf, o.I[:]...)
	return append(buf, o.C[:]...)
}

// FieldElements returns the six tree-leaf scalars [O.x, O.y, I.x, I.y, C.x,
// C.y], each derived from one 16-byte half of the compressed point.
func (o *OutputTuple) FieldElements() []Scalar {
	elements := make([]Scalar, 0, ElementsPerOutput)
	for _, p := range []Point{o.O, o.I, o.C} {
		elements = append(elements, scalarFromEdwards(fieldElementFromHalf(p[:16])))
		elements = append(elements, scalarFromEdwards(fieldElementFromHalf(p[16:])))
	}
	return elements
}

func (o *OutputTuple) points() ([]*edwards25519.Point, error) {
	points := make([]*edwards25519.Point, 0, 3)
	for _, p := range []Point{o.O, o.I, o.C} {
		q, err := p.edwards()
		if err != nil {
			return nil, err
		}
		points = append(points, q)
	}
	return points, nil
}

// Layer holds the sibling elements of one tree level.
type Layer struct {
	Elements []Scalar
}

// LayerFromBytes splits a packed run of 32-byte elements.
func LayerFromBytes(buf []byte) (Layer, error) {
	if len(buf)%ScalarSize != 0 {
		return Layer{}, fmt.Errorf("%w: layer length %d", ErrInvalidParam, len(buf))
	}
	n := len(buf) / ScalarSize
	if n > MaxLayerElements {
		return Layer{}, fmt.Errorf("%w: layer has %d elements", ErrInvalidParam, n)
	}
	layer := Layer{Elements: make([]Scalar, n)}
	for i := range layer.Elements {
		copy(layer.Elements[i][:], buf[i*ScalarSize:])
	}
	return layer, nil
}

// Branch is the authentication path of a leaf, lowest layer first.
type Branch struct {
	LeafIndex uint64
	Layers    []Layer
}

// Validate checks the shape only. It does not check that the branch belongs
// to any particular tree.
func (b *Branch) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil branch", ErrInvalidParam)
	}
	if len(b.Layers) == 0 || len(b.Layers) > MaxDepth {
		return fmt.Errorf("%w: branch has %d layers", ErrInvalidParam, len(b.Layers))
	}
	for i, layer := range b.Layers {
		if len(layer.Elements) > MaxLayerElements {
			return fmt.Errorf("%w: layer %d has %d elements", ErrInvalidParam, i, len(layer.Elements))
		}
	}
	return nil
}

// Input is the re-randomized tuple supplied to verification. Each member is
// a pair of field elements.
type Input struct {
	OTilde [InputElementSize]byte
	ITilde [InputElementSize]byte
	R      [InputElementSize]byte
	CTilde [InputElementSize]byte
}

func InputFromBytes(buf []byte) (*Input, error) {
	if len(buf) != InputSize {
		return nil, fmt.Errorf("%w: input length %d", ErrInvalidParam, len(buf))
	}
	in := &Input{}
	copy(in.OTilde[:], buf[0:])
	copy(in.ITilde[:], buf[InputElementSize:])
	copy(in.R[:], buf[2*InputElementSize:])
	copy(in.CTilde[:], buf[3*InputElementSize:])
	return in, nil
}
