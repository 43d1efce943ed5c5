package attest

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// SignedPayload is the canonical set of fields covered by a checkpoint
// signature. It is JCS-canonicalized before signing so the byte sequence is
// stable across marshalers.
type SignedPayload struct {
	CheckpointID      string `json:"checkpoint_id"`
	AgentID           string `json:"agent_id"`
	Verdict           string `json:"verdict"`
	ThinkingBlockHash string `json:"thinking_block_hash"`
	InputCommitment   string `json:"input_commitment"`
	ChainHash         string `json:"chain_hash"`
	Timestamp         string `json:"timestamp"`
}

// Signer produces Ed25519 checkpoint signatures tagged with a key id so keys
// can rotate without invalidating stored certificates.
type Signer struct {
	priv  ed25519.PrivateKey
	pub   ed25519.PublicKey
	keyID string
}

// NewSigner generates an ephemeral keypair. Used when no seed is configured;
// signatures from ephemeral keys verify only within the process lifetime.
func NewSigner(keyID string) (*Signer, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return &Signer{priv: priv, pub: pub, keyID: keyID}, nil
}

// NewSignerFromSeed derives the keypair from a hex-encoded 32-byte seed.
func NewSignerFromSeed(seedHex, keyID string) (*Signer, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("decode signing seed: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("signing seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &Signer{
		priv:  priv,
		pub:   priv.Public().(ed25519.PublicKey),
		keyID: keyID,
	}, nil
}

// KeyID returns the identifier stored alongside signatures.
func (s *Signer) KeyID() string { return s.keyID }

// PublicKeyHex returns the hex-encoded verifying key for publication.
func (s *Signer) PublicKeyHex() string { return hex.EncodeToString(s.pub) }

// Sign canonicalizes the payload and returns the base64 signature.
func (s *Signer) Sign(p SignedPayload) (string, error) {
	canonical, err := canonicalPayload(p)
	if err != nil {
		return "", err
	}
	sig := ed25519.Sign(s.priv, canonical)
	return base64.StdEncoding.EncodeToString(sig), nil
}

// VerifySignature checks a base64 signature against a hex public key.
func VerifySignature(pubKeyHex, sigB64 string, p SignedPayload) (bool, error) {
	pub, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return false, fmt.Errorf("decode public key: %w", err)
	}
	if len(pub) != ed25519.PublicKeySize {
		return false, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	sig, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return false, fmt.Errorf("decode signature: %w", err)
	}
	canonical, err := canonicalPayload(p)
	if err != nil {
		return false, err
	}
	return ed25519.Verify(ed25519.PublicKey(pub), canonical, sig), nil
}

func canonicalPayload(p SignedPayload) ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal signed payload: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalize signed payload: %w", err)
	}
	return canonical, nil
}
