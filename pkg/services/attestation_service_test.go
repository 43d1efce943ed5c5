package services

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/ent/merkletree"
	"github.com/mnemom/smoltbot/pkg/attest"
	"github.com/mnemom/smoltbot/pkg/models"
	testdb "github.com/mnemom/smoltbot/test/database"
)

func TestAttestationService_Attest(t *testing.T) {
	client := testdb.NewTestClient(t)
	signer, err := attest.NewSigner("test-key-1")
	require.NoError(t, err)
	svc := NewAttestationService(client.DB(), signer, slog.New(slog.DiscardHandler))
	checkpoints := NewCheckpointService(client.Client)
	ctx := context.Background()

	ag := makeAgent(t, client.Client, "sk-attest")
	now := time.Now().UTC().Truncate(time.Second)

	inputs := attest.AnalysisInputs{
		ConscienceValues: []string{"honesty", "transparency"},
		ModelVersion:     "claude-haiku-4-5-20251001",
		PromptTemplateVer: "v3",
	}

	first := makeCheckpoint(ag, models.VerdictClear, now)
	require.NoError(t, checkpoints.StoreCheckpoint(ctx, first))

	t.Run("genesis append", func(t *testing.T) {
		att, err := svc.Attest(ctx, first, inputs)
		require.NoError(t, err)

		assert.Equal(t, attest.GenesisPrev, att.PrevChainHash)
		assert.Equal(t, 0, att.MerkleLeafIndex)
		assert.NotEmpty(t, att.CertificateID)
		assert.Equal(t, "test-key-1", att.SigningKeyID)

		commitment, err := inputs.Commit()
		require.NoError(t, err)
		ts := first.Timestamp.UTC().Format(time.RFC3339)
		want := attest.ChainHash(attest.GenesisPrev, first.CheckpointID, string(first.Verdict),
			first.ThinkingBlockHash, commitment, ts)
		assert.Equal(t, want, att.ChainHash)

		ok, err := attest.VerifySignature(signer.PublicKeyHex(), att.Signature, attest.SignedPayload{
			CheckpointID:      first.CheckpointID,
			AgentID:           first.AgentID,
			Verdict:           string(first.Verdict),
			ThinkingBlockHash: first.ThinkingBlockHash,
			InputCommitment:   commitment,
			ChainHash:         att.ChainHash,
			Timestamp:         ts,
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("second append links the chain and grows the tree", func(t *testing.T) {
		second := makeCheckpoint(ag, models.VerdictReviewNeeded, now.Add(time.Minute))
		second.SessionID = first.SessionID
		require.NoError(t, checkpoints.StoreCheckpoint(ctx, second))

		att, err := svc.Attest(ctx, second, inputs)
		require.NoError(t, err)
		assert.Equal(t, first.Attestation.ChainHash, att.PrevChainHash)
		assert.Equal(t, 1, att.MerkleLeafIndex)

		tree, err := client.Client.MerkleTree.Query().
			Where(merkletree.AgentID(ag.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, tree.LeafCount)
		assert.Equal(t, 1, tree.Depth)
		assert.Len(t, tree.Leaves, 2)
	})

	t.Run("inclusion proof verifies against the stored root", func(t *testing.T) {
		proof, root, err := svc.Prove(ctx, ag.ID, 0)
		require.NoError(t, err)
		assert.True(t, attest.Verify(proof, proof.LeafHash, root))
	})

	t.Run("attestation columns land on the checkpoint row", func(t *testing.T) {
		row, err := checkpoints.GetCheckpoint(ctx, first.CheckpointID)
		require.NoError(t, err)
		assert.Equal(t, first.Attestation.ChainHash, row.ChainHash)
		assert.Equal(t, attest.GenesisPrev, row.PrevChainHash)
		assert.NotEmpty(t, row.Signature)
	})
}

func TestAttestationService_ConcurrentAppendsLinearise(t *testing.T) {
	client := testdb.NewTestClient(t)
	signer, err := attest.NewSigner("test-key-1")
	require.NoError(t, err)
	svc := NewAttestationService(client.DB(), signer, slog.New(slog.DiscardHandler))
	checkpoints := NewCheckpointService(client.Client)
	ctx := context.Background()

	ag := makeAgent(t, client.Client, "sk-concurrent")
	now := time.Now().UTC().Truncate(time.Second)
	inputs := attest.AnalysisInputs{ModelVersion: "claude-haiku-4-5-20251001", PromptTemplateVer: "v3"}

	const n = 4
	cps := make([]*models.IntegrityCheckpoint, n)
	for i := range cps {
		cps[i] = makeCheckpoint(ag, models.VerdictClear, now.Add(time.Duration(i)*time.Second))
		cps[i].SessionID = cps[0].SessionID
		require.NoError(t, checkpoints.StoreCheckpoint(ctx, cps[i]))
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range cps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Attest(ctx, cps[i], inputs)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		require.NoError(t, err, "append %d", i)
	}

	// Reconstruct the chain in leaf order and verify continuity.
	links := make([]attest.ChainLink, 0, n)
	byPrev := make(map[string]*models.IntegrityCheckpoint, n)
	for _, cp := range cps {
		byPrev[cp.Attestation.PrevChainHash] = cp
	}
	prev := attest.GenesisPrev
	for range cps {
		cp, ok := byPrev[prev]
		require.True(t, ok, "chain broken at prev %q", prev)
		links = append(links, attest.ChainLink{
			CheckpointID:      cp.CheckpointID,
			Verdict:           string(cp.Verdict),
			ThinkingBlockHash: cp.ThinkingBlockHash,
			InputCommitment:   cp.Attestation.InputCommitment,
			TimestampISO:      cp.Timestamp.UTC().Format(time.RFC3339),
			PrevChainHash:     cp.Attestation.PrevChainHash,
			ChainHash:         cp.Attestation.ChainHash,
		})
		prev = cp.Attestation.ChainHash
	}
	assert.Equal(t, -1, attest.VerifyChain(links))

	tree, err := client.Client.MerkleTree.Query().
		Where(merkletree.AgentID(ag.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, tree.LeafCount)
}

func TestAttestationService_ConcurrentFirstLeavesAcrossSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	signer, err := attest.NewSigner("test-key-1")
	require.NoError(t, err)
	svc := NewAttestationService(client.DB(), signer, slog.New(slog.DiscardHandler))
	checkpoints := NewCheckpointService(client.Client)
	ctx := context.Background()

	// A brand-new agent with no merkle_trees row: the racing transactions
	// must serialise even though there is nothing to row-lock yet.
	ag := makeAgent(t, client.Client, "sk-first-leaf")
	now := time.Now().UTC().Truncate(time.Second)
	inputs := attest.AnalysisInputs{ModelVersion: "claude-haiku-4-5-20251001", PromptTemplateVer: "v3"}

	// Hour-apart timestamps place each checkpoint in its own session, so the
	// chain-slot index never arbitrates between them.
	const n = 3
	cps := make([]*models.IntegrityCheckpoint, n)
	for i := range cps {
		cps[i] = makeCheckpoint(ag, models.VerdictClear, now.Add(time.Duration(i)*time.Hour))
		require.NoError(t, checkpoints.StoreCheckpoint(ctx, cps[i]))
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range cps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Attest(ctx, cps[i], inputs)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		require.NoError(t, err, "attest %d", i)
	}

	tree, err := client.Client.MerkleTree.Query().
		Where(merkletree.AgentID(ag.ID)).
		Only(ctx)
	require.NoError(t, err)
	require.Equal(t, n, tree.LeafCount, "no first-insert overwrite may drop a leaf")

	// Every checkpoint's leaf sits at its stored index, and the indexes are
	// a permutation of 0..n-1.
	seen := make(map[int]bool, n)
	for _, cp := range cps {
		idx := cp.Attestation.MerkleLeafIndex
		assert.False(t, seen[idx], "duplicate leaf index %d", idx)
		seen[idx] = true

		want := attest.LeafHash(cp.CheckpointID, string(cp.Verdict), cp.ThinkingBlockHash,
			cp.Attestation.ChainHash, cp.Timestamp.UTC().Format(time.RFC3339))
		require.Less(t, idx, len(tree.Leaves))
		assert.Equal(t, want, tree.Leaves[idx])

		proof, root, err := svc.Prove(ctx, ag.ID, idx)
		require.NoError(t, err)
		assert.Equal(t, want, proof.LeafHash)
		assert.True(t, attest.Verify(proof, proof.LeafHash, root))
	}
}
