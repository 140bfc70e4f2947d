// Package webhook verifies the HMAC-SHA256 signatures Zalo Mini App attaches
// to webhook deliveries, and ships a small http.Handler for receiving them.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
	"sync"
)

// ErrMissingParameter is returned when the payload, signature, or secret is
// absent. A signature that merely does not match is a normal false result,
// never an error.
var ErrMissingParameter = errors.New("missing required parameter")

// Verifier checks webhook payload signatures for one shared secret. Hash
// instances are pooled, so a single Verifier can serve concurrent deliveries
// without per-call allocations.
type Verifier struct {
	pool sync.Pool
}

// NewVerifier constructs a Verifier for the given shared secret.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: secret", ErrMissingParameter)
	}

	key := []byte(secret)
	return &Verifier{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}, nil
}

// Sign computes the hex-encoded HMAC-SHA256 signature of payload under the
// verifier's secret. This is the exact value the remote side is expected to
// send alongside the payload.
func (v *Verifier) Sign(payload []byte) string {
	return hex.EncodeToString(v.sum(payload))
}

// Verify recomputes the expected signature for payload and compares it
// against the provided one in constant time. A malformed or mismatching
// signature yields false with a nil error.
func (v *Verifier) Verify(payload []byte, signature string) (bool, error) {
	if len(payload) == 0 {
		return false, fmt.Errorf("%w: payload", ErrMissingParameter)
	}
	if signature == "" {
		return false, fmt.Errorf("%w: signature", ErrMissingParameter)
	}

	provided, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(signature)))
	if err != nil {
		return false, nil
	}

	// hmac.Equal compares in constant time, so the comparison duration does
	// not depend on where the first differing byte sits.
	return hmac.Equal(provided, v.sum(payload)), nil
}

func (v *Verifier) sum(payload []byte) []byte {
	h := v.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(payload)
	digest := h.Sum(nil)

	h.Reset()
	v.pool.Put(h)

	return digest
}

// Verify is a one-shot convenience over [Verifier.Verify] for callers that
// do not hold a long-lived Verifier.
func Verify(payload []byte, signature, secret string) (bool, error) {
	v, err := NewVerifier(secret)
	if err != nil {
		return false, err
	}

	return v.Verify(payload, signature)
}
