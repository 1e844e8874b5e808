package guard

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Credential is the configured API key digest. The zero value is a valid
// "nothing configured" credential that rejects every key.
type Credential struct {
	digest     [sha256.Size]byte
	salt       string
	configured bool
}

// NewCredential parses a hex encoded sha256 digest. An empty digest yields an
// unconfigured credential.
func NewCredential(hexDigest, salt string) (Credential, error) {
	hexDigest = strings.TrimSpace(hexDigest)
	if hexDigest == "" {
		return Credential{}, nil
	}

	raw, err := hex.DecodeString(hexDigest)
	if err != nil {
		return Credential{}, fmt.Errorf("api key hash: %w", err)
	}

	if len(raw) != sha256.Size {
		return Credential{}, errors.New("api key hash: want 64 hex characters")
	}

	c := Credential{salt: salt, configured: true}
	copy(c.digest[:], raw)

	return c, nil
}

// Configured reports whether a digest was provided.
func (c Credential) Configured() bool {
	return c.configured
}

// Verify hashes key and compares it with the stored digest in constant time.
// An unconfigured credential runs the same comparison against a zero digest.
func (c Credential) Verify(key string) bool {
	sum := Digest(key, c.salt)
	match := subtle.ConstantTimeCompare(sum[:], c.digest[:]) == 1

	return match && c.configured
}

// Digest returns sha256(salt || key).
func Digest(key, salt string) [sha256.Size]byte {
	return sha256.Sum256([]byte(salt + key))
}

// HexDigest is Digest encoded the way API_KEY_HASH expects it.
func HexDigest(key, salt string) string {
	sum := Digest(key, salt)

	return hex.EncodeToString(sum[:])
}
