// Package webhook delivers signed event notifications to subscriber
// endpoints: inline first attempts for low latency, a bounded retry worker
// for everything else.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Outbound request headers.
const (
	HeaderSignature = "X-AIP-Signature"
	HeaderVersion   = "X-AIP-Version"
)

// RecommendedTimestampWindow is the clock skew subscribers should accept
// when validating the signed timestamp.
const RecommendedTimestampWindow = 300 // seconds

// Signature computes the payload signature: "v1=" + hex of
// HMAC-SHA256(secret, "<unix_seconds>.<raw_body>"). The timestamp binds the
// signature to a delivery window so captured payloads cannot be replayed
// later.
func Signature(secret string, unixSeconds int64, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(unixSeconds, 10)))
	mac.Write([]byte("."))
	mac.Write(body)
	return "v1=" + hex.EncodeToString(mac.Sum(nil))
}

// SignatureHeader formats the X-AIP-Signature header value.
func SignatureHeader(signature string) string {
	return "sha256=" + signature
}

// VerifySignature checks a received signature in constant time. Subscribers
// use this (or its equivalent) on their side; it is exported so integration
// tests and the docs example share one implementation.
func VerifySignature(secret string, unixSeconds int64, body []byte, signature string) bool {
	expected := Signature(secret, unixSeconds, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
