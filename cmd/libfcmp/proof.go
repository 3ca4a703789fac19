package main

// #cgo CFLAGS: -I${SRCDIR}/include
// #include "fcmp.h"
import "C"

import (
	"unsafe"

	fcmp "github.com/nucash-mining/WATTx-0.1.7"
	"github.com/nucash-mining/WATTx-0.1.7/internal/ffi"
)

//export fcmp_proof_size
func fcmp_proof_size(numInputs, numLayers C.uint32_t) C.size_t {
	return C.size_t(ffi.ProofSize(uint32(numInputs), uint32(numLayers)))
}

// branchFromC copies the caller's branch into Go memory.
func branchFromC(b *C.FcmpBranch) (*fcmp.Branch, fcmp.Code) {
	if b.layers == nil || b.num_layers == 0 || int(b.num_layers) > fcmp.MaxDepth {
		return nil, fcmp.CodeInvalidParam
	}
	layers := unsafe.Slice(b.layers, int(b.num_layers))
	branch := &fcmp.Branch{
		LeafIndex: uint64(b.leaf_index),
		Layers:    make([]fcmp.Layer, len(layers)),
	}
	for i, l := range layers {
		n := int(l.num_elements)
		if n == 0 {
			continue
		}
		if l.elements == nil || n > fcmp.MaxLayerElements {
			return nil, fcmp.CodeInvalidParam
		}
		layer, err := fcmp.LayerFromBytes(bytesOf(l.elements, n*fcmp.ScalarSize))
		if err != nil {
			return nil, fcmp.CodeOf(err)
		}
		branch.Layers[i] = layer
	}
	return branch, fcmp.CodeSuccess
}

//export fcmp_prove
func fcmp_prove(proofOut *C.uint8_t, proofLenOut *C.size_t, proofMaxLen C.size_t, root, output *C.uint8_t, branch *C.FcmpBranch) C.int32_t {
	if proofOut == nil || proofLenOut == nil || root == nil || output == nil || branch == nil {
		return status(fcmp.CodeInvalidParam)
	}
	if !ffi.IsInitialized() {
		return status(fcmp.CodeNotInitialized)
	}
	br, code := branchFromC(branch)
	if code != fcmp.CodeSuccess {
		return status(code)
	}

	// No proof is longer than MaxProofBuffer, so a larger caller length is
	// never dereferenced.
	limit := uint64(proofMaxLen)
	if limit > ffi.MaxProofBuffer {
		limit = ffi.MaxProofBuffer
	}
	n, code := ffi.Prove(bytesOf(proofOut, int(limit)), bytesOf(root, fcmp.PointSize), bytesOf(output, fcmp.OutputTupleSize), br)
	if code != fcmp.CodeSuccess {
		return status(code)
	}
	*proofLenOut = C.size_t(n)
	return status(fcmp.CodeSuccess)
}

//export fcmp_verify
func fcmp_verify(root *C.uint8_t, input *C.FcmpInput, proof *C.uint8_t, proofLen C.size_t) C.int32_t {
	if root == nil || input == nil || proof == nil {
		return status(fcmp.CodeInvalidParam)
	}
	if !ffi.IsInitialized() {
		return status(fcmp.CodeNotInitialized)
	}
	if uint64(proofLen) < fcmp.MinProofSize {
		return status(fcmp.CodeInvalidParam)
	}
	if uint64(proofLen) > ffi.MaxProofBuffer {
		return status(fcmp.CodeProofVerification)
	}
	in := bytesOf((*C.uint8_t)(unsafe.Pointer(input)), fcmp.InputSize)
	return status(ffi.Verify(bytesOf(root, fcmp.PointSize), in, bytesOf(proof, int(proofLen))))
}
