package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fcmp "github.com/nucash-mining/WATTx-0.1.7"
	"github.com/nucash-mining/WATTx-0.1.7/internal/ffi"
)

type proveFixture struct {
	root   []byte
	output []byte
	branch *hostBranch
}

func newProveFixture(t *testing.T, leafIndex uint64, numLayers int) proveFixture {
	t.Helper()

	points := make([]fcmp.Point, 4)
	for i, label := range []string{"root", "O", "I", "C"} {
		p, err := fcmp.HashToPoint([]byte(label))
		require.NoError(t, err)
		points[i] = p
	}
	out := fcmp.OutputTuple{O: points[1], I: points[2], C: points[3]}
	offset := int(leafIndex%fcmp.LeafBranchWidth) * fcmp.ElementsPerOutput

	branch := &hostBranch{LeafIndex: leafIndex, NumLayers: uint32(numLayers)}
	for l := 0; l < numLayers; l++ {
		elements := make([]fcmp.Scalar, fcmp.LeafLayerWidth)
		for i := range elements {
			elements[i] = fcmp.HashToScalar([]byte(fmt.Sprintf("%d/%d", l, i)))
		}
		if l == 0 {
			copy(elements[offset:], out.FieldElements())
		}
		var packed []byte
		for _, e := range elements {
			packed = append(packed, e[:]...)
		}
		branch.Layers = append(branch.Layers, hostLayer{Count: uint32(len(elements)), Elements: packed})
	}
	return proveFixture{root: points[0][:], output: out.Bytes(), branch: branch}
}

func withInit(t *testing.T) {
	t.Helper()
	hostCleanup()
	require.Equal(t, int32(0), hostInit())
	t.Cleanup(hostCleanup)
}

func TestHostLifecycle(t *testing.T) {
	assert := assert.New(t)
	hostCleanup()

	assert.False(hostIsInitialized())
	assert.Equal(int32(0), hostInit())
	assert.Equal(int32(0), hostInit())
	assert.True(hostIsInitialized())
	hostCleanup()
	hostCleanup()
	assert.False(hostIsInitialized())
}

func TestHostMetadata(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0.1.0", hostVersion())
	assert.Equal("Success", hostErrorString(0))
	assert.Equal("Memory allocation failed", hostErrorString(-4))
	assert.Equal("Unknown error", hostErrorString(12))

	assert.Equal(uint64(0), hostProofSize(0, 3))
	assert.Equal(uint64(0), hostProofSize(3, 0))
	assert.Equal(uint64(672), hostProofSize(1, 1))
	assert.Equal(uint64(896), hostProofSize(2, 3))
	assert.Equal(uint64(1984), hostProofSize(1, fcmp.MaxDepth))
}

func TestHostPedersenCommit(t *testing.T) {
	assert := assert.New(t)

	v, r := fcmp.ScalarFromUint64(42), fcmp.ScalarFromUint64(1)
	code, out := hostPedersenCommit(v[:], r[:])
	assert.Equal(int32(0), code)
	assert.Equal("8ca4e8ef2945091052766dedd4de7ae51c0070a7f4708daa4c4da49b771a5c2b", hex.EncodeToString(out))

	code, _ = hostPedersenCommit(nil, r[:])
	assert.Equal(int32(fcmp.CodeInvalidParam), code)
}

func TestHostProveVerify(t *testing.T) {
	withInit(t)
	assert := assert.New(t)

	f := newProveFixture(t, 41, 3)
	code, n, buf := hostProve(int(ffi.MaxProofBuffer), ffi.MaxProofBuffer, f.root, f.output, f.branch)
	require.Equal(t, int32(0), code)
	require.NotEqual(t, uint64(lenSentinel), n)
	assert.Greater(n, uint64(fcmp.MinProofSize))
	assert.LessOrEqual(n, hostProofSize(1, 3))
	proof := buf[:n]

	input := make([]byte, fcmp.InputSize)
	assert.Equal(int32(0), hostVerify(f.root, input, proof))
	assert.Equal(int32(fcmp.CodeProofVerification), hostVerify(f.output[:fcmp.PointSize], input, proof))
	assert.Equal(int32(fcmp.CodeInvalidParam), hostVerify(f.root, input, proof[:10]))
	assert.Equal(int32(fcmp.CodeInvalidParam), hostVerify(f.root, nil, proof))
	assert.Equal(int32(fcmp.CodeInvalidParam), hostVerify(nil, input, proof))

	tampered := bytes.Clone(proof)
	tampered[len(tampered)-1] ^= 1
	assert.Equal(int32(fcmp.CodeProofVerification), hostVerify(f.root, input, tampered))
}

func TestHostProveBufferLength(t *testing.T) {
	withInit(t)
	assert := assert.New(t)
	f := newProveFixture(t, 0, 2)

	// A declared length far beyond the buffer is clamped to the largest proof.
	code, n, buf := hostProve(int(ffi.MaxProofBuffer), 1<<40, f.root, f.output, f.branch)
	assert.Equal(int32(0), code)
	assert.Equal(int32(0), hostVerify(f.root, make([]byte, fcmp.InputSize), buf[:n]))

	code, n, buf = hostProve(int(ffi.MaxProofBuffer), fcmp.MinProofSize, f.root, f.output, f.branch)
	assert.Equal(int32(fcmp.CodeMemory), code)
	assert.Equal(uint64(lenSentinel), n)
	assert.Equal(bytes.Repeat([]byte{0xaa}, int(ffi.MaxProofBuffer)), buf)
}

func TestHostProveRejects(t *testing.T) {
	f := newProveFixture(t, 5, 2)

	hostCleanup()
	code, n, buf := hostProve(1024, 1024, f.root, f.output, f.branch)
	assert.Equal(t, int32(fcmp.CodeNotInitialized), code)
	assert.Equal(t, uint64(lenSentinel), n)
	assert.Equal(t, bytes.Repeat([]byte{0xaa}, 1024), buf)

	withInit(t)
	layer := f.branch.Layers[1]
	invalidPoint := make([]byte, fcmp.PointSize)
	invalidPoint[0] = 2
	for name, tc := range map[string]struct {
		bufLen       int
		root, output []byte
		branch       *hostBranch
		want         fcmp.Code
	}{
		"null proof":       {0, f.root, f.output, f.branch, fcmp.CodeInvalidParam},
		"null root":        {1024, nil, f.output, f.branch, fcmp.CodeInvalidParam},
		"null output":      {1024, f.root, nil, f.branch, fcmp.CodeInvalidParam},
		"null branch":      {1024, f.root, f.output, nil, fcmp.CodeInvalidParam},
		"zero layers":      {1024, f.root, f.output, &hostBranch{Layers: f.branch.Layers}, fcmp.CodeInvalidParam},
		"null layers":      {1024, f.root, f.output, &hostBranch{NumLayers: 2}, fcmp.CodeInvalidParam},
		"too deep":         {1024, f.root, f.output, &hostBranch{NumLayers: fcmp.MaxDepth + 1, Layers: f.branch.Layers}, fcmp.CodeInvalidParam},
		"null elements":    {1024, f.root, f.output, &hostBranch{LeafIndex: 5, NumLayers: 2, Layers: []hostLayer{f.branch.Layers[0], {Count: 3}}}, fcmp.CodeInvalidParam},
		"wrong leaf":       {1024, f.root, f.output, &hostBranch{LeafIndex: 6, NumLayers: 2, Layers: f.branch.Layers}, fcmp.CodeProofGeneration},
		"non-canonical":    {1024, f.root, f.output, &hostBranch{LeafIndex: 5, NumLayers: 2, Layers: []hostLayer{f.branch.Layers[0], {Count: 1, Elements: bytes.Repeat([]byte{0xff}, 32)}}}, fcmp.CodeInvalidScalar},
		"empty upper":      {1024, f.root, f.output, &hostBranch{LeafIndex: 5, NumLayers: 2, Layers: []hostLayer{f.branch.Layers[0], {}}}, fcmp.CodeSuccess},
		"invalid root":     {1024, invalidPoint, f.output, f.branch, fcmp.CodeInvalidPoint},
		"upper layer only": {1024, f.root, f.output, &hostBranch{LeafIndex: 5, NumLayers: 1, Layers: []hostLayer{layer}}, fcmp.CodeProofGeneration},
	} {
		code, n, _ := hostProve(tc.bufLen, 1024, tc.root, tc.output, tc.branch)
		assert.Equal(t, int32(tc.want), code, name)
		if tc.want != fcmp.CodeSuccess {
			assert.Equal(t, uint64(lenSentinel), n, name)
		}
	}
}
