// Package bcrypt adapts golang.org/x/crypto/bcrypt to the PasswordHasher port.
package bcrypt

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"

	"github.com/ericfisherdev/invitegate/internal/domain/port/driven"
)

// DefaultCost is used when the configured cost is zero.
const DefaultCost = 12

// Compile-time interface satisfaction check.
var _ driven.PasswordHasher = (*Hasher)(nil)

// Hasher implements driven.PasswordHasher using bcrypt. Every Hash call draws
// a fresh salt, so hashing the same password twice yields different strings.
// Passwords are reduced to a base64 SHA-256 digest first, which keeps every
// input under bcrypt's 72-byte limit without truncating it.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given cost, clamped to the range bcrypt accepts.
func NewHasher(cost int) *Hasher {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Cost returns the effective work factor.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns the bcrypt digest of plaintext. Any length is accepted.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. Mismatches and malformed
// hashes return false.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(plaintext)) == nil
}

// prehash returns the 44-byte base64 encoding of the SHA-256 of plaintext.
// The encoding has no NUL bytes, which bcrypt would treat as a terminator.
func prehash(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
