// Package cryptox holds the small amount of cryptography the service needs: comparing
// shared secrets such as the API key without leaking timing information.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token, base64url
// encoded (43 chars). Fingerprints let a secret be kept in memory without its raw value.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// MatchesFingerprint reports whether candidate hashes to fingerprint. The comparison
// runs in constant time over fixed-length digests, so neither the content nor the
// length of the secret leaks.
func MatchesFingerprint(candidate, fingerprint string) bool {
	if candidate == "" || fingerprint == "" {
		return false
	}
	got := FingerprintToken(candidate)
	return subtle.ConstantTimeCompare([]byte(got), []byte(fingerprint)) == 1
}
