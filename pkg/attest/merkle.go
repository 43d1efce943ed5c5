// Package attest binds integrity checkpoints into verifiable structure.
// Each checkpoint is linked into a per-session hash chain and appended to a
// per-agent Merkle accumulator, then covered by an Ed25519-signed certificate.
package attest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ProofPosition tells the verifier which side a sibling hash sits on.
type ProofPosition string

// Proof position constants.
const (
	PositionLeft  ProofPosition = "left"
	PositionRight ProofPosition = "right"
)

// ProofStep is one level of an inclusion proof.
type ProofStep struct {
	Sibling  string        `json:"sibling"`
	Position ProofPosition `json:"position"`
}

// InclusionProof is the sibling path from a leaf to the root.
type InclusionProof struct {
	LeafIndex int         `json:"leaf_index"`
	LeafHash  string      `json:"leaf_hash"`
	Root      string      `json:"root"`
	Steps     []ProofStep `json:"steps"`
}

// TreeState is the persisted accumulator snapshot for one agent.
type TreeState struct {
	Root      string   `json:"root"`
	Depth     int      `json:"depth"`
	LeafCount int      `json:"leaf_count"`
	Leaves    []string `json:"leaves"`
}

// ErrEmptyTree is returned when a proof is requested from a zero-leaf tree.
var ErrEmptyTree = errors.New("attest: merkle tree has no leaves")

// ErrLeafOutOfRange is returned when the requested leaf index does not exist.
var ErrLeafOutOfRange = errors.New("attest: leaf index out of range")

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// LeafHash computes a checkpoint's Merkle leaf from its binding fields,
// joined with "|".
func LeafHash(checkpointID, verdict, thinkingBlockHash, chainHash, timestampISO string) string {
	preimage := strings.Join([]string{checkpointID, verdict, thinkingBlockHash, chainHash, timestampISO}, "|")
	return sha256Hex([]byte(preimage))
}

// nodeHash combines two child hashes. The hex strings are concatenated as
// ASCII and hashed, not hex-decoded to raw bytes first. Already-issued
// certificates depend on this preimage; changing it orphans their proofs.
func nodeHash(left, right string) string {
	return sha256Hex([]byte(left + right))
}

// Root recomputes the accumulator root from a leaf-hash sequence.
// At any level with an odd node count the last node is duplicated before
// pairing. A zero-leaf tree has the empty-string root.
func Root(leaves []string) string {
	if len(leaves) == 0 {
		return ""
	}
	level := append([]string(nil), leaves...)
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([]string, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, nodeHash(level[i], level[i+1]))
		}
		level = next
	}
	return level[0]
}

// Depth returns ceil(log2(leafCount)); 0 for empty and single-leaf trees.
func Depth(leafCount int) int {
	if leafCount <= 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(leafCount))))
}

// BuildState computes the full persisted snapshot for a leaf sequence.
func BuildState(leaves []string) TreeState {
	return TreeState{
		Root:      Root(leaves),
		Depth:     Depth(len(leaves)),
		LeafCount: len(leaves),
		Leaves:    leaves,
	}
}

// Prove generates the inclusion proof for leaf i over the current leaf array.
// Walks levels bottom-up; the odd fringe is duplicated before the sibling is
// selected, so the last node of an odd level proves against itself.
func Prove(leaves []string, i int) (*InclusionProof, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	if i < 0 || i >= len(leaves) {
		return nil, fmt.Errorf("%w: index %d, leaf count %d", ErrLeafOutOfRange, i, len(leaves))
	}

	proof := &InclusionProof{
		LeafIndex: i,
		LeafHash:  leaves[i],
		Root:      Root(leaves),
	}

	level := append([]string(nil), leaves...)
	idx := i
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		if idx%2 == 0 {
			proof.Steps = append(proof.Steps, ProofStep{Sibling: level[idx+1], Position: PositionRight})
		} else {
			proof.Steps = append(proof.Steps, ProofStep{Sibling: level[idx-1], Position: PositionLeft})
		}

		next := make([]string, 0, len(level)/2)
		for j := 0; j < len(level); j += 2 {
			next = append(next, nodeHash(level[j], level[j+1]))
		}
		level = next
		idx /= 2
	}

	return proof, nil
}

// Verify folds the leaf through the proof's sibling path and compares the
// result against root.
func Verify(proof *InclusionProof, leaf, root string) bool {
	if proof == nil {
		return false
	}
	running := leaf
	for _, step := range proof.Steps {
		switch step.Position {
		case PositionLeft:
			running = nodeHash(step.Sibling, running)
		case PositionRight:
			running = nodeHash(running, step.Sibling)
		default:
			return false
		}
	}
	return running == root
}
