package signature

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/google/go-github/v66/github"
)

/* GitHub legacy webhook signatures
 * X-Hub-Signature carries "sha1=" followed by the lowercase hex HMAC-SHA1 of the raw body.
 * SHA-1 is kept only for compatibility with that header.
 */

const (
	// Header is the request header carrying the signature
	Header = github.SHA1SignatureHeader

	// Prefix identifies the HMAC algorithm in the header value
	Prefix = "sha1="

	// MinSecretBytes is the minimum size accepted by GenerateSecret
	MinSecretBytes = 16

	// MaxSecretBytes is the maximum size accepted by GenerateSecret
	MaxSecretBytes = 64
)

// Compute returns the X-Hub-Signature value for body signed with secret
func Compute(secret string, body []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return Prefix + hex.EncodeToString(mac.Sum(nil))
}

// Equal compares a supplied signature with a computed one in constant time.
// Both values are compared as whole strings, prefix included.
func Equal(supplied, computed string) bool {
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(computed)) == 1
}

// Verify reports whether supplied is the signature of body under secret
func Verify(secret string, body []byte, supplied string) bool {
	return Equal(supplied, Compute(secret, body))
}

// GenerateSecret creates a random hex encoded secret suitable for a GitHub webhook
func GenerateSecret(size int) (string, error) {
	if size < MinSecretBytes || size > MaxSecretBytes {
		return "", fmt.Errorf("secret size must be between %d and %d bytes", MinSecretBytes, MaxSecretBytes)
	}

	bytes := make([]byte, size)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating random bytes: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}
