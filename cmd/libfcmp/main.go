// Command libfcmp builds the C library exposing the fcmp primitives:
//
//	go build -buildmode=c-shared -o libfcmp.so ./cmd/libfcmp
//
// Every pointer argument must reference at least the documented number of
// bytes. Output buffers are written only when the call returns FCMP_SUCCESS.
package main

// #cgo CFLAGS: -I${SRCDIR}/include
// #include "fcmp.h"
import "C"

import (
	"unsafe"

	fcmp "github.com/nucash-mining/WATTx-0.1.7"
	"github.com/nucash-mining/WATTx-0.1.7/internal/ffi"
)

func main() {}

func bytesOf(p *C.uint8_t, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

func status(code fcmp.Code) C.int32_t {
	return C.int32_t(code)
}

func boolean(b bool) C.int32_t {
	if b {
		return 1
	}
	return 0
}

var (
	versionString = C.CString(fcmp.Version)
	unknownError  = C.CString("Unknown error")
	errorStrings  = make(map[fcmp.Code]*C.char)
)

func init() {
	for _, code := range fcmp.Codes() {
		errorStrings[code] = C.CString(code.String())
	}
}

//export fcmp_init
func fcmp_init() C.int32_t {
	return status(ffi.Init())
}

//export fcmp_cleanup
func fcmp_cleanup() {
	ffi.Cleanup()
}

//export fcmp_is_initialized
func fcmp_is_initialized() C.int32_t {
	return boolean(ffi.IsInitialized())
}

//export fcmp_version
func fcmp_version() *C.char {
	return versionString
}

//export fcmp_error_string
func fcmp_error_string(code C.int32_t) *C.char {
	if s, ok := errorStrings[fcmp.Code(code)]; ok {
		return s
	}
	return unknownError
}
