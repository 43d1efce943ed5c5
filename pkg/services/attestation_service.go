package services

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mnemom/smoltbot/pkg/attest"
	"github.com/mnemom/smoltbot/pkg/database"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/models"
)

// AttestationService binds stored checkpoints into the per-session hash chain
// and the per-agent Merkle accumulator, and signs the result.
//
// The chain append is linearised by the database: the head lookup takes a
// transaction-scoped advisory lock, and a partial unique index on
// (session_id, prev_chain_hash) guarantees that of two concurrent appends
// extending the same head, exactly one commits. The loser retries once
// against the new head. Merkle appends serialise on a per-agent advisory
// lock, which also covers the first insert where no tree row exists yet.
type AttestationService struct {
	db     *stdsql.DB
	signer *attest.Signer
	logger *slog.Logger
}

// NewAttestationService creates a new AttestationService.
func NewAttestationService(db *stdsql.DB, signer *attest.Signer, logger *slog.Logger) *AttestationService {
	if db == nil {
		panic("NewAttestationService: db must not be nil")
	}
	if signer == nil {
		panic("NewAttestationService: signer must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AttestationService{
		db:     db,
		signer: signer,
		logger: logger.With("component", "attestation"),
	}
}

// Attest chains, accumulates, and signs a previously stored checkpoint,
// returning the attestation bundle that was written to its row. The caller
// fails open on error: the checkpoint stays valid, just unattested.
func (s *AttestationService) Attest(ctx context.Context, cp *models.IntegrityCheckpoint, inputs attest.AnalysisInputs) (*models.Attestation, error) {
	if cp == nil || cp.CheckpointID == "" {
		return nil, NewValidationError("checkpoint", "stored checkpoint required")
	}

	commitment, err := inputs.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to compute input commitment: %w", err)
	}
	timestampISO := cp.Timestamp.UTC().Format(time.RFC3339)

	for attempt := 0; attempt < 2; attempt++ {
		att, err := s.attemptAttest(ctx, cp, commitment, timestampISO)
		if err == nil {
			return att, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
		s.logger.Debug("lost chain slot race, retrying with new head",
			"checkpoint_id", cp.CheckpointID,
			"session_id", cp.SessionID)
	}
	return nil, fmt.Errorf("%w: session %s", ErrChainContention, cp.SessionID)
}

func (s *AttestationService) attemptAttest(ctx context.Context, cp *models.IntegrityCheckpoint, commitment, timestampISO string) (*models.Attestation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	head, err := database.ChainHead(ctx, tx, cp.AgentID, cp.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chain head: %w", err)
	}

	chainHash := attest.ChainHash(head, cp.CheckpointID, string(cp.Verdict), cp.ThinkingBlockHash, commitment, timestampISO)

	leaves, treeID, err := lockMerkleLeaves(ctx, tx, cp.AgentID)
	if err != nil {
		return nil, err
	}
	leaf := attest.LeafHash(cp.CheckpointID, string(cp.Verdict), cp.ThinkingBlockHash, chainHash, timestampISO)
	leafIndex := len(leaves)
	leaves = append(leaves, leaf)
	state := attest.BuildState(leaves)

	att := &models.Attestation{
		InputCommitment: commitment,
		ChainHash:       chainHash,
		PrevChainHash:   head,
		MerkleLeafIndex: leafIndex,
		CertificateID:   ids.NewCertificateID(),
		SigningKeyID:    s.signer.KeyID(),
	}
	att.Signature, err = s.signer.Sign(attest.SignedPayload{
		CheckpointID:      cp.CheckpointID,
		AgentID:           cp.AgentID,
		Verdict:           string(cp.Verdict),
		ThinkingBlockHash: cp.ThinkingBlockHash,
		InputCommitment:   commitment,
		ChainHash:         chainHash,
		Timestamp:         timestampISO,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign checkpoint: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE integrity_checkpoints
		SET input_commitment = $1, chain_hash = $2, prev_chain_hash = $3,
		    merkle_leaf_index = $4, certificate_id = $5, signature = $6, signing_key_id = $7
		WHERE checkpoint_id = $8`,
		att.InputCommitment, att.ChainHash, att.PrevChainHash,
		att.MerkleLeafIndex, att.CertificateID, att.Signature, att.SigningKeyID,
		cp.CheckpointID)
	if err != nil {
		return nil, fmt.Errorf("failed to write attestation columns: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("checkpoint %s: %w", cp.CheckpointID, ErrNotFound)
	}

	leavesJSON, err := json.Marshal(leaves)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merkle leaves: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO merkle_trees (tree_id, agent_id, root, depth, leaf_count, leaves, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (agent_id) DO UPDATE
		SET root = EXCLUDED.root, depth = EXCLUDED.depth,
		    leaf_count = EXCLUDED.leaf_count, leaves = EXCLUDED.leaves, updated_at = now()`,
		treeID, cp.AgentID, state.Root, state.Depth, state.LeafCount, leavesJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert merkle tree: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attestation: %w", err)
	}
	cp.Attestation = att
	return att, nil
}

// Prove returns an inclusion proof for the given leaf of the agent's
// accumulator, together with the current root it verifies against.
func (s *AttestationService) Prove(ctx context.Context, agentID string, leafIndex int) (*attest.InclusionProof, string, error) {
	var leavesJSON []byte
	var root string
	err := s.db.QueryRowContext(ctx,
		`SELECT leaves, root FROM merkle_trees WHERE agent_id = $1`, agentID).
		Scan(&leavesJSON, &root)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, "", fmt.Errorf("merkle tree for agent %s: %w", agentID, ErrNotFound)
		}
		return nil, "", fmt.Errorf("failed to load merkle tree: %w", err)
	}

	var leaves []string
	if err := json.Unmarshal(leavesJSON, &leaves); err != nil {
		return nil, "", fmt.Errorf("failed to decode merkle leaves: %w", err)
	}
	proof, err := attest.Prove(leaves, leafIndex)
	if err != nil {
		return nil, "", err
	}
	return proof, root, nil
}

// lockMerkleLeaves loads and locks the agent's accumulator inside tx,
// returning its current leaves and the tree id to upsert with.
//
// The advisory lock, not the row lock, is what serialises appends: on the
// agent's first attestation there is no row to lock, and two transactions
// racing the initial insert would otherwise both read empty leaves and claim
// leaf index 0, with the upsert silently dropping one leaf.
func lockMerkleLeaves(ctx context.Context, tx *stdsql.Tx, agentID string) ([]string, string, error) {
	_, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended('merkle:' || $1, 0))`, agentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to lock merkle accumulator: %w", err)
	}

	var treeID string
	var leavesJSON []byte
	err = tx.QueryRowContext(ctx,
		`SELECT tree_id, leaves FROM merkle_trees WHERE agent_id = $1 FOR UPDATE`, agentID).
		Scan(&treeID, &leavesJSON)
	if errors.Is(err, stdsql.ErrNoRows) {
		return nil, ids.NewMerkleTreeID(), nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to lock merkle tree: %w", err)
	}

	var leaves []string
	if err := json.Unmarshal(leavesJSON, &leaves); err != nil {
		return nil, "", fmt.Errorf("failed to decode merkle leaves: %w", err)
	}
	return leaves, treeID, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505), which is how a lost chain-slot race surfaces.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
