// Package ffi is the buffer-level contract behind the exported C symbols.
// Inputs are raw byte slices of at least the documented size, results are
// status codes, and output buffers are written only on success.
package ffi

import (
	fcmp "github.com/nucash-mining/WATTx-0.1.7"
)

// MaxProofBuffer is the largest buffer a proof can need.
var MaxProofBuffer = fcmp.ProofSize(1, fcmp.MaxDepth)

func guard(code *fcmp.Code) {
	if r := recover(); r != nil {
		*code = fcmp.CodeInternal
	}
}

func scalarArg(buf []byte) (fcmp.Scalar, fcmp.Code) {
	if len(buf) < fcmp.ScalarSize {
		return fcmp.Scalar{}, fcmp.CodeInvalidParam
	}
	s, err := fcmp.ScalarFromBytes(buf[:fcmp.ScalarSize])
	return s, fcmp.CodeOf(err)
}

func pointArg(buf []byte) (fcmp.Point, fcmp.Code) {
	var p fcmp.Point
	if len(buf) < fcmp.PointSize {
		return p, fcmp.CodeInvalidParam
	}
	copy(p[:], buf)
	return p, fcmp.CodeSuccess
}

func Init() (code fcmp.Code) {
	defer guard(&code)
	return fcmp.CodeOf(fcmp.Init())
}

func Cleanup() {
	fcmp.Cleanup()
}

func IsInitialized() bool {
	return fcmp.IsInitialized()
}

func ScalarRandom(out []byte) (code fcmp.Code) {
	defer guard(&code)
	if len(out) < fcmp.ScalarSize {
		return fcmp.CodeInvalidParam
	}
	s, err := fcmp.RandomScalar()
	if err != nil {
		return fcmp.CodeOf(err)
	}
	copy(out, s[:])
	s.Zeroize()
	return fcmp.CodeSuccess
}

func ScalarAdd(out, a, b []byte) fcmp.Code {
	return scalarOp(fcmp.ScalarAdd, out, a, b)
}

func ScalarMul(out, a, b []byte) fcmp.Code {
	return scalarOp(fcmp.ScalarMul, out, a, b)
}

func scalarOp(op func(a, b fcmp.Scalar) (fcmp.Scalar, error), out, a, b []byte) (code fcmp.Code) {
	defer guard(&code)
	if len(out) < fcmp.ScalarSize {
		return fcmp.CodeInvalidParam
	}
	x, code := scalarArg(a)
	if code != fcmp.CodeSuccess {
		return code
	}
	defer x.Zeroize()
	y, code := scalarArg(b)
	if code != fcmp.CodeSuccess {
		return code
	}
	defer y.Zeroize()
	r, err := op(x, y)
	if err != nil {
		return fcmp.CodeOf(err)
	}
	copy(out, r[:])
	r.Zeroize()
	return fcmp.CodeSuccess
}

func PointMul(out, scalar, point []byte) (code fcmp.Code) {
	defer guard(&code)
	if len(out) < fcmp.PointSize || len(scalar) < fcmp.ScalarSize {
		return fcmp.CodeInvalidParam
	}
	p, code := pointArg(point)
	if code != fcmp.CodeSuccess {
		return code
	}
	var s fcmp.Scalar
	copy(s[:], scalar)
	defer s.Zeroize()
	r, err := fcmp.PointMul(s, p)
	if err != nil {
		return fcmp.CodeOf(err)
	}
	copy(out, r[:])
	return fcmp.CodeSuccess
}

func PointAdd(out, a, b []byte) (code fcmp.Code) {
	defer guard(&code)
	if len(out) < fcmp.PointSize {
		return fcmp.CodeInvalidParam
	}
	x, code := pointArg(a)
	if code != fcmp.CodeSuccess {
		return code
	}
	y, code := pointArg(b)
	if code != fcmp.CodeSuccess {
		return code
	}
	r, err := fcmp.PointAdd(x, y)
	if err != nil {
		return fcmp.CodeOf(err)
	}
	copy(out, r[:])
	return fcmp.CodeSuccess
}

func PointBasepoint(out []byte) fcmp.Code {
	if len(out) < fcmp.PointSize {
		return fcmp.CodeInvalidParam
	}
	g := fcmp.Basepoint()
	copy(out, g[:])
	return fcmp.CodeSuccess
}

func PointIsValid(point []byte) bool {
	p, code := pointArg(point)
	return code == fcmp.CodeSuccess && fcmp.PointIsValid(p)
}

func HashToScalar(out, data []byte) (code fcmp.Code) {
	defer guard(&code)
	if len(out) < fcmp.ScalarSize {
		return fcmp.CodeInvalidParam
	}
	s := fcmp.HashToScalar(data)
	copy(out, s[:])
	return fcmp.CodeSuccess
}

func HashToPoint(out, data []byte) (code fcmp.Code) {
	defer guard(&code)
	if len(out) < fcmp.PointSize {
		return fcmp.CodeInvalidParam
	}
	p, err := fcmp.HashToPoint(data)
	if err != nil {
		return fcmp.CodeOf(err)
	}
	copy(out, p[:])
	return fcmp.CodeSuccess
}

func PedersenCommit(out, value, blinding []byte) (code fcmp.Code) {
	defer guard(&code)
	if len(out) < fcmp.PointSize {
		return fcmp.CodeInvalidParam
	}
	v, code := scalarArg(value)
	if code != fcmp.CodeSuccess {
		return code
	}
	defer v.Zeroize()
	r, code := scalarArg(blinding)
	if code != fcmp.CodeSuccess {
		return code
	}
	defer r.Zeroize()
	c, err := fcmp.PedersenCommit(v, r)
	if err != nil {
		return fcmp.CodeOf(err)
	}
	copy(out, c[:])
	return fcmp.CodeSuccess
}

func ProofSize(numInputs, numLayers uint32) uint64 {
	return fcmp.ProofSize(numInputs, numLayers)
}

// Prove writes the proof into proofOut and returns its length.
func Prove(proofOut, root, output []byte, branch *fcmp.Branch) (n int, code fcmp.Code) {
	defer guard(&code)
	if !fcmp.IsInitialized() {
		return 0, fcmp.CodeNotInitialized
	}
	r, code := pointArg(root)
	if code != fcmp.CodeSuccess {
		return 0, code
	}
	if len(output) < fcmp.OutputTupleSize {
		return 0, fcmp.CodeInvalidParam
	}
	o, err := fcmp.OutputTupleFromBytes(output[:fcmp.OutputTupleSize])
	if err != nil {
		return 0, fcmp.CodeOf(err)
	}
	proof, err := fcmp.Prove(r, o, branch)
	if err != nil {
		return 0, fcmp.CodeOf(err)
	}
	if len(proof) > len(proofOut) {
		return 0, fcmp.CodeMemory
	}
	return copy(proofOut, proof), fcmp.CodeSuccess
}

func Verify(root, input, proof []byte) (code fcmp.Code) {
	defer guard(&code)
	if !fcmp.IsInitialized() {
		return fcmp.CodeNotInitialized
	}
	r, code := pointArg(root)
	if code != fcmp.CodeSuccess {
		return code
	}
	if len(input) < fcmp.InputSize {
		return fcmp.CodeInvalidParam
	}
	in, err := fcmp.InputFromBytes(input[:fcmp.InputSize])
	if err != nil {
		return fcmp.CodeOf(err)
	}
	return fcmp.CodeOf(fcmp.Verify(r, in, proof))
}

func Version() string {
	return fcmp.Version
}

func ErrorString(code int32) string {
	return fcmp.Code(code).String()
}
