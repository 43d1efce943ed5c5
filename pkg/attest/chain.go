package attest

import (
	"strings"
)

// GenesisPrev is the prev_chain_hash of the first checkpoint in a session.
const GenesisPrev = ""

// ChainHash links a checkpoint to its predecessor. The preimage is the
// previous chain hash followed by the checkpoint binding fields, concatenated
// in order with no separator.
func ChainHash(prev, checkpointID, verdict, thinkingBlockHash, inputCommitment, timestampISO string) string {
	var b strings.Builder
	b.WriteString(prev)
	b.WriteString(checkpointID)
	b.WriteString(verdict)
	b.WriteString(thinkingBlockHash)
	b.WriteString(inputCommitment)
	b.WriteString(timestampISO)
	return sha256Hex([]byte(b.String()))
}

// ChainLink is one verifiable element of a session chain.
type ChainLink struct {
	CheckpointID      string `json:"checkpoint_id"`
	Verdict           string `json:"verdict"`
	ThinkingBlockHash string `json:"thinking_block_hash"`
	InputCommitment   string `json:"input_commitment"`
	TimestampISO      string `json:"timestamp"`
	PrevChainHash     string `json:"prev_chain_hash"`
	ChainHash         string `json:"chain_hash"`
}

// VerifyChain walks links in order and recomputes every hash. Returns the
// index of the first broken link, or -1 when the chain is intact. The first
// link must carry the genesis prev hash.
func VerifyChain(links []ChainLink) int {
	prev := GenesisPrev
	for i, l := range links {
		if l.PrevChainHash != prev {
			return i
		}
		expect := ChainHash(prev, l.CheckpointID, l.Verdict, l.ThinkingBlockHash, l.InputCommitment, l.TimestampISO)
		if l.ChainHash != expect {
			return i
		}
		prev = l.ChainHash
	}
	return -1
}
