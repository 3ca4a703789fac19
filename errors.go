package fcmp

import (
	"errors"
)

// Code is the status returned across the C boundary. The numeric values are
// part of the ABI.
type Code int32

const (
	CodeSuccess           Code = 0
	CodeInvalidParam      Code = -1
	CodeProofGeneration   Code = -2
	CodeProofVerification Code = -3
	CodeMemory            Code = -4
	CodeInvalidPoint      Code = -5
	CodeInvalidScalar     Code = -6
	CodeNotInitialized    Code = -7
	CodeInternal          Code = -99
)

var (
	ErrInvalidParam      = errors.New("invalid parameter")
	ErrProofGeneration   = errors.New("proof generation failed")
	ErrProofVerification = errors.New("proof verification failed")
	ErrMemory            = errors.New("output buffer too small")
	ErrInvalidPoint      = errors.New("invalid curve point")
	ErrInvalidScalar     = errors.New("invalid scalar")
	ErrNotInitialized    = errors.New("library not initialized")
	ErrInternal          = errors.New("internal error")
)

var codeErrors = []struct {
	code Code
	err  error
}{
	{CodeInvalidParam, ErrInvalidParam},
	{CodeProofGeneration, ErrProofGeneration},
	{CodeProofVerification, ErrProofVerification},
	{CodeMemory, ErrMemory},
	{CodeInvalidPoint, ErrInvalidPoint},
	{CodeInvalidScalar, ErrInvalidScalar},
	{CodeNotInitialized, ErrNotInitialized},
	{CodeInternal, ErrInternal},
}

// CodeOf maps an error returned by this package to its status code. Errors
// that do not wrap one of the sentinels are reported as CodeInternal.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}
	for _, ce := range codeErrors {
		if errors.Is(err, ce.err) {
			return ce.code
		}
	}
	return CodeInternal
}

// String returns the message exported through fcmp_error_string.
func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "Success"
	case CodeInvalidParam:
		return "Invalid parameter"
	case CodeProofGeneration:
		return "Proof generation failed"
	case CodeProofVerification:
		return "Proof verification failed"
	case CodeMemory:
		return "Memory allocation failed"
	case CodeInvalidPoint:
		return "Invalid curve point"
	case CodeInvalidScalar:
		return "Invalid scalar"
	case CodeNotInitialized:
		return "Library not initialized"
	case CodeInternal:
		return "Internal error"
	}
	return "Unknown error"
}

// Codes lists every defined status code.
func Codes() []Code {
	codes := []Code{CodeSuccess}
	for _, ce := range codeErrors {
		codes = append(codes, ce.code)
	}
	return codes
}
