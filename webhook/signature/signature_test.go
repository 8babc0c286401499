package signature

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	t.Run("success - known HMAC-SHA1 vector", func(t *testing.T) {
		sig := Compute("key", []byte("The quick brown fox jumps over the lazy dog"))
		assert.Equal(t, "sha1=de7c9b85b8b78aa6bc8a7a36f70a90701c9db4d9", sig)
	})

	t.Run("success - same inputs produce same signature", func(t *testing.T) {
		body := []byte(`{"zen":"Keep it logically awesome.","hook_id":1}`)
		first := Compute("s3cr3t", body)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Compute("s3cr3t", body))
		}
	})

	t.Run("success - lowercase hex with prefix", func(t *testing.T) {
		sig := Compute("s3cr3t", []byte("payload"))
		require.True(t, strings.HasPrefix(sig, Prefix))
		hexPart := strings.TrimPrefix(sig, Prefix)
		assert.Len(t, hexPart, 40)
		assert.Equal(t, strings.ToLower(hexPart), hexPart)
	})

	t.Run("success - different secrets produce different signatures", func(t *testing.T) {
		body := []byte("payload")
		assert.NotEqual(t, Compute("one", body), Compute("two", body))
	})

	t.Run("success - body is signed verbatim", func(t *testing.T) {
		assert.NotEqual(t,
			Compute("s3cr3t", []byte(`{"a":1}`)),
			Compute("s3cr3t", []byte(`{"a": 1}`)),
		)
	})

	t.Run("success - empty body", func(t *testing.T) {
		assert.Equal(t, "sha1=fbdb1d1b18aa6c08324b7d64b71fb76370690e1d", Compute("", nil))
	})
}

func TestVerify(t *testing.T) {
	body := []byte(`{"action":"opened"}`)
	secret := "s3cr3t"

	t.Run("success - valid signature", func(t *testing.T) {
		assert.True(t, Verify(secret, body, Compute(secret, body)))
	})

	t.Run("failure - wrong secret", func(t *testing.T) {
		assert.False(t, Verify(secret, body, Compute("other", body)))
	})

	t.Run("failure - wrong payload", func(t *testing.T) {
		assert.False(t, Verify(secret, []byte(`{"action":"closed"}`), Compute(secret, body)))
	})

	t.Run("failure - missing prefix", func(t *testing.T) {
		sig := strings.TrimPrefix(Compute(secret, body), Prefix)
		assert.False(t, Verify(secret, body, sig))
	})

	t.Run("failure - uppercase hex", func(t *testing.T) {
		sig := Prefix + strings.ToUpper(strings.TrimPrefix(Compute(secret, body), Prefix))
		assert.False(t, Verify(secret, body, sig))
	})

	t.Run("failure - empty signature", func(t *testing.T) {
		assert.False(t, Verify(secret, body, ""))
	})
}

func TestGenerateSecret(t *testing.T) {
	t.Run("success - hex encoded", func(t *testing.T) {
		secret, err := GenerateSecret(32)
		require.NoError(t, err)
		assert.Len(t, secret, 64)
	})

	t.Run("randomness - generates different secrets", func(t *testing.T) {
		first, err1 := GenerateSecret(32)
		second, err2 := GenerateSecret(32)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first, second)
	})

	t.Run("error - too small", func(t *testing.T) {
		_, err := GenerateSecret(MinSecretBytes - 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret size must be between")
	})

	t.Run("error - too large", func(t *testing.T) {
		_, err := GenerateSecret(MaxSecretBytes + 1)
		require.Error(t, err)
	})
}
