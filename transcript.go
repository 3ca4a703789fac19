package fcmp

import (
	"encoding/binary"

	"filippo.io/edwards25519"
	"github.com/gtank/merlin"
)

func InitialTranscript(label string) *merlin.Transcript {
	return merlin.NewTranscript(label)
}

func ProofDomainSep(numLayers uint64, t *merlin.Transcript) *merlin.Transcript {
	appendBytes([]byte("dom-sep"), []byte("fcmp v1"), t)
	appendInt64("layers", numLayers, t)
	return t
}

func appendBytes(field, data []byte, t *merlin.Transcript) {
	t.AppendMessage(field, data)
}

func appendInt64(label string, i uint64, t *merlin.Transcript) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, i)
	appendBytes([]byte(label), buf, t)
}

func AppendPoint(label string, p *edwards25519.Point, t *merlin.Transcript) {
	appendBytes([]byte(label), p.Bytes(), t)
}

// bindingTag ties a proof to the tree root and to its layer commitments.
func bindingTag(root Point, commitments []*edwards25519.Point) []byte {
	t := ProofDomainSep(uint64(len(commitments)), InitialTranscript(PROOF_DOMAIN_TAG))
	appendBytes([]byte("root"), root[:], t)
	for _, c := range commitments {
		AppendPoint("C", c, t)
	}
	return t.ExtractBytes([]byte("binding"), BindingSize)
}
