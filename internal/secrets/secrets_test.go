package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{"simple", "hunter2"},
		{"unicode", "pässwörd-密码-🔐"},
		{"special characters", `p@$$'"\&<>;|`},
		{"looks like base64", "c2VjcmV0"},
		{"long", strings.Repeat("x", 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := Encrypt(tt.plaintext, testSecret)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(sealed, Prefix))
			assert.NotContains(t, sealed, tt.plaintext)

			got, err := Decrypt(sealed, testSecret)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestEncryptEmptyStringYieldsEmpty(t *testing.T) {
	sealed, err := Encrypt("", testSecret)
	require.NoError(t, err)
	assert.Empty(t, sealed)

	got, err := Decrypt("", testSecret)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecryptPassesUnmarkedValuesThrough(t *testing.T) {
	// Legacy stored values have no enc:v1: marker; the authenticator's
	// base64 heuristic handles them downstream.
	for _, stored := range []string{"plaintext", "c2VjcmV0"} {
		got, err := Decrypt(stored, testSecret)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	}
}

func TestDecryptWithWrongSecretFails(t *testing.T) {
	sealed, err := Encrypt("hunter2", testSecret)
	require.NoError(t, err)

	_, err = Decrypt(sealed, "a-different-secret")
	assert.Error(t, err)
}

func TestEncryptIsNondeterministic(t *testing.T) {
	a, err := Encrypt("hunter2", testSecret)
	require.NoError(t, err)
	b, err := Encrypt("hunter2", testSecret)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "fresh nonce per encryption")
}

func TestDecryptRejectsGarbageEnvelope(t *testing.T) {
	_, err := Decrypt(Prefix+"!!!not-base64!!!", testSecret)
	assert.Error(t, err)

	_, err = Decrypt(Prefix+"AAAA", testSecret)
	assert.Error(t, err)
}
