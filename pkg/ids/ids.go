// Package ids mints the persistent identifiers used across the integrity
// pipeline. Random segments use the [a-z0-9] alphabet; collisions at 8 chars
// are possible but neutralised by upsert semantics at the persistence layer.
package ids

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Identifier prefixes.
const (
	PrefixAgent         = "smolt"
	PrefixCard          = "ac"
	PrefixCheckpoint    = "ic"
	PrefixTrace         = "tr"
	PrefixEvent         = "evt"
	PrefixEndpoint      = "whe"
	PrefixDelivery      = "whd"
	PrefixNudge         = "nudge"
	PrefixRedelivery    = "del"
	PrefixUsageEvent    = "ue"
	PrefixMeteringEvent = "me"
	PrefixCertificate   = "cert"
	PrefixMerkleTree    = "mt"
	PrefixAudit         = "al"
)

// randomSegment returns n characters drawn uniformly from the id alphabet.
func randomSegment(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; if it does the
		// process has bigger problems than id generation.
		panic("ids: crypto/rand unavailable: " + err.Error())
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out)
}

// AgentHash returns the first 16 hex characters of SHA-256(credential).
// This is the stable, non-reversible agent identity derived from the
// provider API key.
func AgentHash(credential string) string {
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:])[:16]
}

// AccountID derives the stable billing account identity from an operator
// billing key: "acct-" + first 12 hex characters of SHA-256(key). Like the
// agent hash it is non-reversible; the key itself is never stored.
func AccountID(billingKey string) string {
	sum := sha256.Sum256([]byte(billingKey))
	return "acct-" + hex.EncodeToString(sum[:])[:12]
}

// AgentID returns "smolt-<hash8>" for a given agent hash.
func AgentID(agentHash string) string {
	suffix := agentHash
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return PrefixAgent + "-" + suffix
}

// NewCheckpointID returns "ic-<rand8>".
func NewCheckpointID() string { return PrefixCheckpoint + "-" + randomSegment(8) }

// NewCardID returns "ac-<rand8>".
func NewCardID() string { return PrefixCard + "-" + randomSegment(8) }

// NewTraceID returns "tr-<rand8>".
func NewTraceID() string { return PrefixTrace + "-" + randomSegment(8) }

// NewEventID returns "evt-<rand8>".
func NewEventID() string { return PrefixEvent + "-" + randomSegment(8) }

// NewEndpointID returns "whe-<rand8>".
func NewEndpointID() string { return PrefixEndpoint + "-" + randomSegment(8) }

// NewDeliveryID returns "whd-<rand8>".
func NewDeliveryID() string { return PrefixDelivery + "-" + randomSegment(8) }

// NewNudgeID returns "nudge-<rand8>".
func NewNudgeID() string { return PrefixNudge + "-" + randomSegment(8) }

// NewRedeliveryID returns "del-<rand12>". Longer segment: re-deliveries are
// operator-initiated and never deduplicated by upsert.
func NewRedeliveryID() string { return PrefixRedelivery + "-" + randomSegment(12) }

// NewUsageEventID returns "ue-<rand8>".
func NewUsageEventID() string { return PrefixUsageEvent + "-" + randomSegment(8) }

// NewMeteringEventID returns "me-<rand8>".
func NewMeteringEventID() string { return PrefixMeteringEvent + "-" + randomSegment(8) }

// NewCertificateID returns "cert-<rand8>".
func NewCertificateID() string { return PrefixCertificate + "-" + randomSegment(8) }

// NewMerkleTreeID returns "mt-<rand8>".
func NewMerkleTreeID() string { return PrefixMerkleTree + "-" + randomSegment(8) }

// NewAuditID returns "al-<rand8>".
func NewAuditID() string { return PrefixAudit + "-" + randomSegment(8) }

// SessionID derives the hour-bucketed session identifier for an agent.
// Sessions are logically bounded at hour boundaries: "<agent_hash>-<bucket>".
func SessionID(agentHash string, unixSeconds int64) string {
	return agentHash + "-" + strconv.FormatInt(unixSeconds/3600, 10)
}
