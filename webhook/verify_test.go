package webhook

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "webhook-shared-secret"

func TestVerify_CorrectSignature(t *testing.T) {
	payload := []byte(`{"event": "app.published", "appId": "123456"}`)

	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	ok, err := v.Verify(payload, v.Sign(payload))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_UppercaseSignatureAccepted(t *testing.T) {
	payload := []byte(`{"event": "app.published"}`)

	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	ok, err := v.Verify(payload, strings.ToUpper(v.Sign(payload)))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_SingleByteMutationRejected(t *testing.T) {
	payload := []byte(`{"event": "app.published", "appId": "123456"}`)

	v, err := NewVerifier(testSecret)
	require.NoError(t, err)
	signature := v.Sign(payload)

	// Mutations at the start, middle, and end of the signature must all be
	// rejected alike.
	for _, pos := range []int{0, len(signature) / 2, len(signature) - 1} {
		mutated := []byte(signature)
		if mutated[pos] == 'a' {
			mutated[pos] = 'b'
		} else {
			mutated[pos] = 'a'
		}

		ok, err := v.Verify(payload, string(mutated))
		require.NoError(t, err)
		assert.False(t, ok, "mutation at position %d must not verify", pos)
	}
}

func TestVerify_MalformedSignatureIsMismatchNotError(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	ok, err := v.Verify([]byte("payload"), "not-hex-at-all")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_WrongSecret(t *testing.T) {
	payload := []byte(`{"event": "app.published"}`)

	signer, err := NewVerifier("one-secret")
	require.NoError(t, err)

	ok, err := Verify(payload, signer.Sign(payload), "another-secret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_MissingInputs(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	_, err = v.Verify(nil, "deadbeef")
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = v.Verify([]byte("payload"), "")
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = NewVerifier("")
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = Verify([]byte("payload"), "deadbeef", "")
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestVerifier_ConcurrentUse(t *testing.T) {
	payload := []byte(`{"event": "app.published"}`)

	v, err := NewVerifier(testSecret)
	require.NoError(t, err)
	signature := v.Sign(payload)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ok, err := v.Verify(payload, signature)
				assert.NoError(t, err)
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}
