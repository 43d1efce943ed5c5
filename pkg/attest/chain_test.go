package attest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLink(prev, id, verdict string) ChainLink {
	l := ChainLink{
		CheckpointID:      id,
		Verdict:           verdict,
		ThinkingBlockHash: ThinkingHash("thinking for " + id),
		InputCommitment:   sha256Hex([]byte("input for " + id)),
		TimestampISO:      "2026-08-24T12:00:00Z",
		PrevChainHash:     prev,
	}
	l.ChainHash = ChainHash(prev, l.CheckpointID, l.Verdict, l.ThinkingBlockHash, l.InputCommitment, l.TimestampISO)
	return l
}

func TestChainHashDeterminism(t *testing.T) {
	a := ChainHash(GenesisPrev, "ic_1", "clear", "th", "ic", "ts")
	b := ChainHash(GenesisPrev, "ic_1", "clear", "th", "ic", "ts")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	// Any field change moves the hash.
	assert.NotEqual(t, a, ChainHash(GenesisPrev, "ic_2", "clear", "th", "ic", "ts"))
	assert.NotEqual(t, a, ChainHash(a, "ic_1", "clear", "th", "ic", "ts"))
}

func TestVerifyChain(t *testing.T) {
	l1 := makeLink(GenesisPrev, "ic_1", "clear")
	l2 := makeLink(l1.ChainHash, "ic_2", "review_needed")
	l3 := makeLink(l2.ChainHash, "ic_3", "clear")
	chain := []ChainLink{l1, l2, l3}

	t.Run("intact chain", func(t *testing.T) {
		assert.Equal(t, -1, VerifyChain(chain))
	})

	t.Run("empty chain is intact", func(t *testing.T) {
		assert.Equal(t, -1, VerifyChain(nil))
	})

	t.Run("tampered verdict breaks at that link", func(t *testing.T) {
		broken := append([]ChainLink(nil), chain...)
		broken[1].Verdict = "clear"
		assert.Equal(t, 1, VerifyChain(broken))
	})

	t.Run("removed middle link breaks the successor", func(t *testing.T) {
		assert.Equal(t, 1, VerifyChain([]ChainLink{l1, l3}))
	})

	t.Run("non-genesis first link is broken", func(t *testing.T) {
		assert.Equal(t, 0, VerifyChain([]ChainLink{l2, l3}))
	})
}

func TestInputCommitment(t *testing.T) {
	t.Run("key order does not matter", func(t *testing.T) {
		a, err := InputCommitment([]byte(`{"b":2,"a":1}`))
		require.NoError(t, err)
		b, err := InputCommitment([]byte(`{"a":1, "b":2}`))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("values matter", func(t *testing.T) {
		a, err := InputCommitment([]byte(`{"a":1}`))
		require.NoError(t, err)
		b, err := InputCommitment([]byte(`{"a":2}`))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("invalid json errors", func(t *testing.T) {
		_, err := InputCommitment([]byte(`{`))
		assert.Error(t, err)
	})
}
