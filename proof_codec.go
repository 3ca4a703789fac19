package fcmp

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	ProofVersion = 1
	BindingSize  = 64

	// MinProofSize is the encoded size of a one-layer proof.
	MinProofSize = 2 + 2 + (2 + PointSize) + (2 + BindingSize)
)

const (
	fieldVersion     protowire.Number = 1
	fieldLayers      protowire.Number = 2
	fieldCommitments protowire.Number = 3
	fieldBinding     protowire.Number = 4
)

var errMalformedProof = errors.New("malformed proof")

// proofEnvelope is the wire form of a proof: a protobuf message with
// version, layer count, the packed layer commitments and the binding tag.
type proofEnvelope struct {
	Version     uint64
	Layers      uint64
	Commitments []byte
	Binding     []byte
}

func (e *proofEnvelope) Marshal() []byte {
	var buf []byte
	buf = protowire.AppendTag(buf, fieldVersion, protowire.VarintType)
	buf = protowire.AppendVarint(buf, e.Version)
	buf = protowire.AppendTag(buf, fieldLayers, protowire.VarintType)
	buf = protowire.AppendVarint(buf, e.Layers)
	buf = protowire.AppendTag(buf, fieldCommitments, protowire.BytesType)
	buf = protowire.AppendBytes(buf, e.Commitments)
	buf = protowire.AppendTag(buf, fieldBinding, protowire.BytesType)
	buf = protowire.AppendBytes(buf, e.Binding)
	return buf
}

func unmarshalProofEnvelope(buf []byte) (*proofEnvelope, error) {
	e := &proofEnvelope{}
	seen := make(map[protowire.Number]bool)
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", errMalformedProof, protowire.ParseError(n))
		}
		buf = buf[n:]
		if seen[num] {
			return nil, fmt.Errorf("%w: duplicate field %d", errMalformedProof, num)
		}
		seen[num] = true

		switch {
		case (num == fieldVersion || num == fieldLayers) && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", errMalformedProof, protowire.ParseError(n))
			}
			buf = buf[n:]
			if num == fieldVersion {
				e.Version = v
			} else {
				e.Layers = v
			}
		case (num == fieldCommitments || num == fieldBinding) && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", errMalformedProof, protowire.ParseError(n))
			}
			buf = buf[n:]
			if num == fieldCommitments {
				e.Commitments = v
			} else {
				e.Binding = v
			}
		default:
			return nil, fmt.Errorf("%w: unexpected field %d type %d", errMalformedProof, num, typ)
		}
	}
	if len(seen) != 4 {
		return nil, fmt.Errorf("%w: missing fields", errMalformedProof)
	}
	return e, nil
}
