package main

// #cgo CFLAGS: -I${SRCDIR}/include
// #include "fcmp.h"
import "C"

import (
	fcmp "github.com/nucash-mining/WATTx-0.1.7"
	"github.com/nucash-mining/WATTx-0.1.7/internal/ffi"
)

//export fcmp_scalar_random
func fcmp_scalar_random(out *C.uint8_t) C.int32_t {
	if out == nil {
		return status(fcmp.CodeInvalidParam)
	}
	return status(ffi.ScalarRandom(bytesOf(out, fcmp.ScalarSize)))
}

//export fcmp_scalar_add
func fcmp_scalar_add(out, a, b *C.uint8_t) C.int32_t {
	if out == nil || a == nil || b == nil {
		return status(fcmp.CodeInvalidParam)
	}
	return status(ffi.ScalarAdd(bytesOf(out, fcmp.ScalarSize), bytesOf(a, fcmp.ScalarSize), bytesOf(b, fcmp.ScalarSize)))
}

//export fcmp_scalar_mul
func fcmp_scalar_mul(out, a, b *C.uint8_t) C.int32_t {
	if out == nil || a == nil || b == nil {
		return status(fcmp.CodeInvalidParam)
	}
	return status(ffi.ScalarMul(bytesOf(out, fcmp.ScalarSize), bytesOf(a, fcmp.ScalarSize), bytesOf(b, fcmp.ScalarSize)))
}

//export fcmp_point_mul
func fcmp_point_mul(out, scalar, point *C.uint8_t) C.int32_t {
	if out == nil || scalar == nil || point == nil {
		return status(fcmp.CodeInvalidParam)
	}
	return status(ffi.PointMul(bytesOf(out, fcmp.PointSize), bytesOf(scalar, fcmp.ScalarSize), bytesOf(point, fcmp.PointSize)))
}

//export fcmp_point_add
func fcmp_point_add(out, a, b *C.uint8_t) C.int32_t {
	if out == nil || a == nil || b == nil {
		return status(fcmp.CodeInvalidParam)
	}
	return status(ffi.PointAdd(bytesOf(out, fcmp.PointSize), bytesOf(a, fcmp.PointSize), bytesOf(b, fcmp.PointSize)))
}

//export fcmp_point_basepoint
func fcmp_point_basepoint(out *C.uint8_t) C.int32_t {
	if out == nil {
		return status(fcmp.CodeInvalidParam)
	}
	return status(ffi.PointBasepoint(bytesOf(out, fcmp.PointSize)))
}

//export fcmp_point_is_valid
func fcmp_point_is_valid(point *C.uint8_t) C.int32_t {
	if point == nil {
		return 0
	}
	return boolean(ffi.PointIsValid(bytesOf(point, fcmp.PointSize)))
}

//export fcmp_hash_to_scalar
func fcmp_hash_to_scalar(out, data *C.uint8_t, dataLen C.size_t) C.int32_t {
	if out == nil || (data == nil && dataLen > 0) {
		return status(fcmp.CodeInvalidParam)
	}
	var msg []byte
	if dataLen > 0 {
		msg = bytesOf(data, int(dataLen))
	}
	return status(ffi.HashToScalar(bytesOf(out, fcmp.ScalarSize), msg))
}

//export fcmp_hash_to_point
func fcmp_hash_to_point(out, data *C.uint8_t, dataLen C.size_t) C.int32_t {
	if out == nil || (data == nil && dataLen > 0) {
		return status(fcmp.CodeInvalidParam)
	}
	var msg []byte
	if dataLen > 0 {
		msg = bytesOf(data, int(dataLen))
	}
	return status(ffi.HashToPoint(bytesOf(out, fcmp.PointSize), msg))
}

//export fcmp_pedersen_commit
func fcmp_pedersen_commit(out, value, blinding *C.uint8_t) C.int32_t {
	if out == nil || value == nil || blinding == nil {
		return status(fcmp.CodeInvalidParam)
	}
	return status(ffi.PedersenCommit(bytesOf(out, fcmp.PointSize), bytesOf(value, fcmp.ScalarSize), bytesOf(blinding, fcmp.ScalarSize)))
}
