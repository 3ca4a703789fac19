package main

// #cgo CFLAGS: -I${SRCDIR}/include
// #include <stdlib.h>
// #include <string.h>
// #include "fcmp.h"
// #include "_cgo_export.h"
//
// static int32_t host_init(void) { return fcmp_init(); }
// static void host_cleanup(void) { fcmp_cleanup(); }
// static int32_t host_is_initialized(void) { return fcmp_is_initialized(); }
//
// static size_t host_proof_size(uint32_t num_inputs, uint32_t num_layers) {
//     return fcmp_proof_size(num_inputs, num_layers);
// }
//
// static int32_t host_pedersen_commit(uint8_t* out, uint8_t* value, uint8_t* blinding) {
//     return fcmp_pedersen_commit(out, value, blinding);
// }
//
// static void host_set_layer(FcmpBranchLayer* layers, uint32_t i, uint32_t num_elements, uint8_t* elements) {
//     layers[i].num_elements = num_elements;
//     layers[i].elements = elements;
// }
//
// static FcmpBranch* host_branch(uint64_t leaf_index, uint32_t num_layers, FcmpBranchLayer* layers) {
//     FcmpBranch* b = malloc(sizeof(FcmpBranch));
//     b->leaf_index = leaf_index;
//     b->num_layers = num_layers;
//     b->layers = layers;
//     return b;
// }
//
// static int32_t host_prove(uint8_t* proof_out, size_t* proof_len_out, size_t proof_max_len,
//                           uint8_t* tree_root, uint8_t* output, FcmpBranch* branch) {
//     return fcmp_prove(proof_out, proof_len_out, proof_max_len, tree_root, output, branch);
// }
//
// static int32_t host_verify(uint8_t* tree_root, FcmpInput* input, uint8_t* proof, size_t proof_len) {
//     return fcmp_verify(tree_root, input, proof, proof_len);
// }
//
// static const char* host_version(void) { return fcmp_version(); }
// static const char* host_error_string(int32_t code) { return fcmp_error_string(code); }
import "C"

import (
	"unsafe"
)

// The host* helpers drive the exports from C with the prototypes of
// fcmp_ffi.h, the way a host linked against libfcmp calls them. All memory
// handed across is C memory.

const lenSentinel = 0x5a5a

type hostLayer struct {
	Count    uint32
	Elements []byte // nil passes a NULL element pointer
}

type hostBranch struct {
	LeafIndex uint64
	NumLayers uint32
	Layers    []hostLayer // nil passes a NULL layer array
}

func cBytes(b []byte) *C.uint8_t {
	if b == nil {
		return nil
	}
	return (*C.uint8_t)(C.CBytes(b))
}

func free[T any](p *T) {
	C.free(unsafe.Pointer(p))
}

func hostInit() int32 {
	return int32(C.host_init())
}

func hostCleanup() {
	C.host_cleanup()
}

func hostIsInitialized() bool {
	return C.host_is_initialized() == 1
}

func hostProofSize(numInputs, numLayers uint32) uint64 {
	return uint64(C.host_proof_size(C.uint32_t(numInputs), C.uint32_t(numLayers)))
}

func hostVersion() string {
	return C.GoString(C.host_version())
}

func hostErrorString(code int32) string {
	return C.GoString(C.host_error_string(C.int32_t(code)))
}

func hostPedersenCommit(value, blinding []byte) (int32, []byte) {
	out := (*C.uint8_t)(C.malloc(32))
	defer free(out)
	v, r := cBytes(value), cBytes(blinding)
	defer free(v)
	defer free(r)
	code := C.host_pedersen_commit(out, v, r)
	return int32(code), C.GoBytes(unsafe.Pointer(out), 32)
}

func (b *hostBranch) toC() (*C.FcmpBranch, func()) {
	var frees []func()
	var layers *C.FcmpBranchLayer
	if b.Layers != nil {
		n := len(b.Layers) + 1
		layers = (*C.FcmpBranchLayer)(C.calloc(C.size_t(n), C.sizeof_FcmpBranchLayer))
		frees = append(frees, func() { free(layers) })
		for i, l := range b.Layers {
			elements := cBytes(l.Elements)
			frees = append(frees, func() { free(elements) })
			C.host_set_layer(layers, C.uint32_t(i), C.uint32_t(l.Count), elements)
		}
	}
	branch := C.host_branch(C.uint64_t(b.LeafIndex), C.uint32_t(b.NumLayers), layers)
	return branch, func() {
		free(branch)
		for _, f := range frees {
			f()
		}
	}
}

// hostProve allocates bufLen bytes of 0xaa for the proof (NULL when bufLen
// is 0), passes maxLen as proof_max_len and seeds proof_len_out with
// lenSentinel. It returns the status, proof_len_out and the whole buffer.
func hostProve(bufLen int, maxLen uint64, root, output []byte, branch *hostBranch) (int32, uint64, []byte) {
	var proof *C.uint8_t
	if bufLen > 0 {
		proof = (*C.uint8_t)(C.malloc(C.size_t(bufLen)))
		defer free(proof)
		C.memset(unsafe.Pointer(proof), 0xaa, C.size_t(bufLen))
	}
	proofLen := (*C.size_t)(C.malloc(C.sizeof_size_t))
	defer free(proofLen)
	*proofLen = lenSentinel

	cRoot, cOutput := cBytes(root), cBytes(output)
	defer free(cRoot)
	defer free(cOutput)

	var cBranch *C.FcmpBranch
	if branch != nil {
		var release func()
		cBranch, release = branch.toC()
		defer release()
	}

	code := C.host_prove(proof, proofLen, C.size_t(maxLen), cRoot, cOutput, cBranch)
	var buf []byte
	if proof != nil {
		buf = C.GoBytes(unsafe.Pointer(proof), C.int(bufLen))
	}
	return int32(code), uint64(*proofLen), buf
}

func hostVerify(root, input, proof []byte) int32 {
	cRoot, cProof := cBytes(root), cBytes(proof)
	defer free(cRoot)
	defer free(cProof)
	var cInput *C.FcmpInput
	if input != nil {
		cInput = (*C.FcmpInput)(C.CBytes(input))
		defer free(cInput)
	}
	return int32(C.host_verify(cRoot, cInput, cProof, C.size_t(len(proof))))
}
