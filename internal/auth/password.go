// Package auth implements the shared-secret password gate.
// The API has no users or sessions — a single bcrypt hash, loaded once from
// configuration at startup, guards the whole surface. Verification returns a
// plain boolean; no token is issued.
package auth

import "golang.org/x/crypto/bcrypt"

// Gate compares plaintext candidates against one precomputed bcrypt hash.
// The hash is read-only after construction.
type Gate struct {
	hash []byte
}

// NewGate constructs a Gate for the given bcrypt hash string
// (e.g. "$2a$10$...").
func NewGate(hash string) *Gate {
	return &Gate{hash: []byte(hash)}
}

// Verify reports whether candidate matches the configured hash.
// A malformed stored hash simply never matches.
func (g *Gate) Verify(candidate string) bool {
	return bcrypt.CompareHashAndPassword(g.hash, []byte(candidate)) == nil
}
