package fcmp

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"math"
	"math/bits"

	"filippo.io/edwards25519"
)

// ProofSize estimates the buffer a caller must provide: a bulletproof base,
// two points per inner-product round and one commitment per input per layer.
// The formula is part of the ABI.
func ProofSize(numInputs, numLayers uint32) uint64 {
	if numInputs == 0 || numLayers == 0 {
		return 0
	}
	base := uint64(32 * 16)
	ipa := uint64(32 * 2 * bits.Len32(numLayers))
	hi, commits := bits.Mul64(32*uint64(numInputs), uint64(numLayers))
	if hi != 0 || commits > math.MaxUint64-base-ipa-64 {
		return math.MaxUint64
	}
	return base + ipa + commits + 64
}

// Prove produces a proof blob binding the tree root to blinded commitments of
// every branch layer.
//
// This is not a membership argument and proves nothing about possession of a
// branch. The binding tag is computed from public data only, so anyone can
// build a blob that Verify accepts for any root. Prove rejects branches whose
// leaf layer does not carry the output; that check never reaches the verifier.
func Prove(root Point, output OutputTuple, branch *Branch) ([]byte, error) {
	p, err := CurrentParams()
	if err != nil {
		return nil, err
	}
	if err := branch.Validate(); err != nil {
		return nil, err
	}
	if _, err := root.edwards(); err != nil {
		return nil, err
	}
	if _, err := output.points(); err != nil {
		return nil, err
	}
	layers, err := decodeLayers(branch)
	if err != nil {
		return nil, err
	}
	if err := checkBranch(p, output, branch); err != nil {
		return nil, err
	}

	commitments := make([]*edwards25519.Point, len(layers))
	packed := make([]byte, 0, len(layers)*PointSize)
	for l, values := range layers {
		r, err := randomEdwardsScalar()
		if err != nil {
			return nil, err
		}
		commitments[l] = p.Layers.Commit(p.Pedersen.BBlinding, values, r)
		zeroScalar(r)
		packed = append(packed, commitments[l].Bytes()...)
	}

	envelope := &proofEnvelope{
		Version:     ProofVersion,
		Layers:      uint64(len(layers)),
		Commitments: packed,
		Binding:     bindingTag(root, commitments),
	}
	return envelope.Marshal(), nil
}

func decodeLayers(branch *Branch) ([][]*edwards25519.Scalar, error) {
	layers := make([][]*edwards25519.Scalar, len(branch.Layers))
	for l, layer := range branch.Layers {
		values := make([]*edwards25519.Scalar, len(layer.Elements))
		for i, e := range layer.Elements {
			s, err := e.edwards()
			if err != nil {
				return nil, fmt.Errorf("layer %d element %d: %w", l, i, err)
			}
			values[i] = s
		}
		layers[l] = values
	}
	return layers, nil
}

// checkBranch rejects branches that cannot belong to output: a layer wider
// than the generator table, or a leaf layer that does not carry the output's
// field elements at the slot implied by the leaf index.
func checkBranch(p *Params, output OutputTuple, branch *Branch) error {
	for l, layer := range branch.Layers {
		if len(layer.Elements) > p.Layers.GensCapacity {
			return fmt.Errorf("%w: layer %d has %d elements, %d generators", ErrProofGeneration, l, len(layer.Elements), p.Layers.GensCapacity)
		}
	}

	offset := int(branch.LeafIndex%LeafBranchWidth) * ElementsPerOutput
	leaf := branch.Layers[0].Elements
	if len(leaf) < offset+ElementsPerOutput {
		return fmt.Errorf("%w: leaf layer has %d elements, output slot at %d", ErrProofGeneration, len(leaf), offset)
	}
	for i, e := range output.FieldElements() {
		if subtle.ConstantTimeCompare(leaf[offset+i][:], e[:]) != 1 {
			return fmt.Errorf("%w: output not found in leaf layer", ErrProofGeneration)
		}
	}
	return nil
}

// Verify checks that a proof is well formed and that its binding tag matches
// the tree root and commitments. It does not establish membership. The
// re-randomized input is required but not bound.
func Verify(root Point, input *Input, proof []byte) error {
	if _, err := CurrentParams(); err != nil {
		return err
	}
	if input == nil {
		return fmt.Errorf("%w: nil input", ErrInvalidParam)
	}
	if len(proof) < MinProofSize {
		return fmt.Errorf("%w: proof length %d below %d", ErrInvalidParam, len(proof), MinProofSize)
	}
	err := verifyProof(root, proof)
	if err != nil {
		logger.Printf("proof rejected: %v", err)
		return fmt.Errorf("%w: %v", ErrProofVerification, err)
	}
	return nil
}

func verifyProof(root Point, proof []byte) error {
	if allZero(proof) {
		return errors.New("all-zero proof")
	}
	e, err := unmarshalProofEnvelope(proof)
	if err != nil {
		return err
	}
	if e.Version != ProofVersion {
		return fmt.Errorf("unknown proof version %d", e.Version)
	}
	if e.Layers == 0 || e.Layers > MaxDepth {
		return fmt.Errorf("proof has %d layers", e.Layers)
	}
	if uint64(len(e.Commitments)) != e.Layers*PointSize || len(e.Binding) != BindingSize {
		return fmt.Errorf("%w: field sizes", errMalformedProof)
	}
	if _, err := root.edwards(); err != nil {
		return fmt.Errorf("tree root: %v", err)
	}

	identity := edwards25519.NewIdentityPoint()
	commitments := make([]*edwards25519.Point, e.Layers)
	for l := range commitments {
		c, err := decodePoint(e.Commitments[l*PointSize : (l+1)*PointSize])
		if err != nil {
			return fmt.Errorf("layer %d commitment: %v", l, err)
		}
		if c.Equal(identity) == 1 {
			return fmt.Errorf("layer %d commitment is the identity", l)
		}
		commitments[l] = c
	}

	if subtle.ConstantTimeCompare(bindingTag(root, commitments), e.Binding) != 1 {
		return errors.New("binding tag mismatch")
	}
	return nil
}

func allZero(buf []byte) bool {
	var acc byte
	for _, b := range buf {
		acc |= b
	}
	return acc == 0
}
