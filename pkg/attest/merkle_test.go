package attest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestRoot(t *testing.T) {
	t.Run("empty tree has empty root", func(t *testing.T) {
		assert.Equal(t, "", Root(nil))
	})

	t.Run("single leaf root equals the leaf", func(t *testing.T) {
		leaf := hexHash("only")
		assert.Equal(t, leaf, Root([]string{leaf}))
	})

	t.Run("two leaves hash their ascii concatenation", func(t *testing.T) {
		h1, h2 := hexHash("a"), hexHash("b")
		assert.Equal(t, hexHash(h1+h2), Root([]string{h1, h2}))
	})

	t.Run("odd level duplicates its last node", func(t *testing.T) {
		h1, h2, h3 := hexHash("a"), hexHash("b"), hexHash("c")
		a := hexHash(h1 + h2)
		b := hexHash(h3 + h3)
		assert.Equal(t, hexHash(a+b), Root([]string{h1, h2, h3}))
	})
}

func TestDepth(t *testing.T) {
	cases := []struct {
		leaves int
		depth  int
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.depth, Depth(c.leaves), "leaves=%d", c.leaves)
	}
}

func TestProve(t *testing.T) {
	t.Run("three leaf proof for first leaf", func(t *testing.T) {
		h1, h2, h3 := hexHash("a"), hexHash("b"), hexHash("c")
		leaves := []string{h1, h2, h3}

		proof, err := Prove(leaves, 0)
		require.NoError(t, err)

		b := hexHash(h3 + h3)
		require.Len(t, proof.Steps, 2)
		assert.Equal(t, ProofStep{Sibling: h2, Position: PositionRight}, proof.Steps[0])
		assert.Equal(t, ProofStep{Sibling: b, Position: PositionRight}, proof.Steps[1])
		assert.True(t, Verify(proof, h1, Root(leaves)))
	})

	t.Run("fringe leaf proves against its own duplicate", func(t *testing.T) {
		h1, h2, h3 := hexHash("a"), hexHash("b"), hexHash("c")
		leaves := []string{h1, h2, h3}

		proof, err := Prove(leaves, 2)
		require.NoError(t, err)
		assert.Equal(t, ProofStep{Sibling: h3, Position: PositionRight}, proof.Steps[0])
		assert.True(t, Verify(proof, h3, Root(leaves)))
	})

	t.Run("empty tree", func(t *testing.T) {
		_, err := Prove(nil, 0)
		assert.ErrorIs(t, err, ErrEmptyTree)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := Prove([]string{hexHash("a")}, 1)
		assert.ErrorIs(t, err, ErrLeafOutOfRange)
	})
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	leaves := []string{hexHash("a"), hexHash("b"), hexHash("c"), hexHash("d")}
	proof, err := Prove(leaves, 1)
	require.NoError(t, err)
	root := Root(leaves)

	require.True(t, Verify(proof, leaves[1], root))

	assert.False(t, Verify(proof, leaves[0], root), "wrong leaf")
	assert.False(t, Verify(proof, leaves[1], hexHash("x")), "wrong root")

	proof.Steps[0].Sibling = hexHash("evil")
	assert.False(t, Verify(proof, leaves[1], root), "tampered sibling")
}

func TestProveVerifyProperty(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100

	properties := gopter.NewProperties(params)
	properties.Property("every leaf of every tree verifies against the root", prop.ForAll(
		func(n int) bool {
			leaves := make([]string, n)
			for i := range leaves {
				leaves[i] = hexHash(fmt.Sprintf("leaf-%d", i))
			}
			root := Root(leaves)
			for i := range leaves {
				proof, err := Prove(leaves, i)
				if err != nil {
					return false
				}
				if !Verify(proof, leaves[i], root) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 1024),
	))
	properties.TestingRun(t)
}

func TestBuildState(t *testing.T) {
	leaves := []string{hexHash("a"), hexHash("b"), hexHash("c")}
	state := BuildState(leaves)
	assert.Equal(t, Root(leaves), state.Root)
	assert.Equal(t, 2, state.Depth)
	assert.Equal(t, 3, state.LeafCount)
	assert.Equal(t, leaves, state.Leaves)
}
