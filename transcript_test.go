package fcmp

import (
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProofDomainSep(t *testing.T) {
	assert := assert.New(t)

	plain := InitialTranscript(PROOF_DOMAIN_TAG).ExtractBytes([]byte("digest32"), 32)
	one := ProofDomainSep(1, InitialTranscript(PROOF_DOMAIN_TAG)).ExtractBytes([]byte("digest32"), 32)
	two := ProofDomainSep(2, InitialTranscript(PROOF_DOMAIN_TAG)).ExtractBytes([]byte("digest32"), 32)
	assert.NotEqual(plain, one)
	assert.NotEqual(one, two)
	assert.Equal(one, ProofDomainSep(1, InitialTranscript(PROOF_DOMAIN_TAG)).ExtractBytes([]byte("digest32"), 32))

	other := ProofDomainSep(1, InitialTranscript("other")).ExtractBytes([]byte("digest32"), 32)
	assert.NotEqual(one, other)
}

func TestBindingTag(t *testing.T) {
	assert := assert.New(t)

	root, err := HashToPoint([]byte("root"))
	require.NoError(t, err)
	other, err := HashToPoint([]byte("other root"))
	require.NoError(t, err)
	g := edwards25519.NewGeneratorPoint()
	h, err := hashToPoint([]byte("h"))
	require.NoError(t, err)

	tag := bindingTag(root, []*edwards25519.Point{g, h})
	assert.Len(tag, BindingSize)
	assert.Equal(tag, bindingTag(root, []*edwards25519.Point{g, h}))
	assert.NotEqual(tag, bindingTag(other, []*edwards25519.Point{g, h}))
	assert.NotEqual(tag, bindingTag(root, []*edwards25519.Point{h, g}))
	assert.NotEqual(tag, bindingTag(root, []*edwards25519.Point{g}))
}
