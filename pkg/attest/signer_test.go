package attest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() SignedPayload {
	return SignedPayload{
		CheckpointID:      "ic_abc12345",
		AgentID:           "smolt-1a2b3c4d",
		Verdict:           "clear",
		ThinkingBlockHash: ThinkingHash("some reasoning"),
		InputCommitment:   sha256Hex([]byte("request")),
		ChainHash:         sha256Hex([]byte("chain")),
		Timestamp:         "2026-08-24T12:00:00Z",
	}
}

func TestSignerRoundTrip(t *testing.T) {
	signer, err := NewSignerFromSeed(strings.Repeat("ab", 32), "key-2026-01")
	require.NoError(t, err)
	assert.Equal(t, "key-2026-01", signer.KeyID())

	p := testPayload()
	sig, err := signer.Sign(p)
	require.NoError(t, err)

	ok, err := VerifySignature(signer.PublicKeyHex(), sig, p)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSignerRejectsModifiedPayload(t *testing.T) {
	signer, err := NewSigner("ephemeral")
	require.NoError(t, err)

	p := testPayload()
	sig, err := signer.Sign(p)
	require.NoError(t, err)

	p.Verdict = "boundary_violation"
	ok, err := VerifySignature(signer.PublicKeyHex(), sig, p)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignerSeedIsDeterministic(t *testing.T) {
	seed := strings.Repeat("cd", 32)
	s1, err := NewSignerFromSeed(seed, "k")
	require.NoError(t, err)
	s2, err := NewSignerFromSeed(seed, "k")
	require.NoError(t, err)
	assert.Equal(t, s1.PublicKeyHex(), s2.PublicKeyHex())

	p := testPayload()
	sig1, err := s1.Sign(p)
	require.NoError(t, err)
	sig2, err := s2.Sign(p)
	require.NoError(t, err)
	assert.Equal(t, sig1, sig2)
}

func TestNewSignerFromSeedValidation(t *testing.T) {
	_, err := NewSignerFromSeed("zz", "k")
	assert.Error(t, err, "non-hex seed")

	_, err = NewSignerFromSeed("abcd", "k")
	assert.Error(t, err, "short seed")
}
