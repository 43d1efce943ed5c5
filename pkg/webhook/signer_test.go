package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	secret := "s"
	body := []byte(`{"ok":1}`)
	ts := int64(1700000000)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(`1700000000.{"ok":1}`))
	want := "v1=" + hex.EncodeToString(mac.Sum(nil))

	got := Signature(secret, ts, body)
	assert.Equal(t, want, got, "signature input is timestamp, dot, raw body")
	assert.Equal(t, "sha256="+got, SignatureHeader(got))
}

func TestSignature_SensitiveToEveryInput(t *testing.T) {
	base := Signature("s", 1700000000, []byte(`{"ok":1}`))

	assert.NotEqual(t, base, Signature("other", 1700000000, []byte(`{"ok":1}`)))
	assert.NotEqual(t, base, Signature("s", 1700000001, []byte(`{"ok":1}`)))
	assert.NotEqual(t, base, Signature("s", 1700000000, []byte(`{"ok":2}`)))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"id":"evt-abc12345","type":"drift.detected"}`)
	sig := Signature("topsecret", 1700000000, body)

	assert.True(t, VerifySignature("topsecret", 1700000000, body, sig))
	assert.False(t, VerifySignature("topsecret", 1700000300, body, sig))
	assert.False(t, VerifySignature("wrong", 1700000000, body, sig))
}
