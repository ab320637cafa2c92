package utils

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashIterations = 1000
	hashKeyLen     = 62
)

// Hasher derives password hashes with PBKDF2-HMAC-SHA512 salted by a single
// process-wide secret.  The transform is deterministic: equal inputs produce
// equal hashes, including for two users that picked the same password.
type Hasher struct {
	secret []byte
}

// NewHasher returns a Hasher salted with secret.
func NewHasher(secret string) *Hasher {
	return &Hasher{secret: []byte(secret)}
}

// Hash returns the hex encoded key derived from plain.
func (h *Hasher) Hash(plain string) string {
	key := pbkdf2.Key([]byte(plain), h.secret, hashIterations, hashKeyLen, sha512.New)
	return hex.EncodeToString(key)
}

// Matches re-hashes candidate and compares it with a stored hash in
// constant time.
func (h *Hasher) Matches(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(h.Hash(candidate))) == 1
}
