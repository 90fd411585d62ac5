// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// PasswordHasher turns plaintext passwords into self-describing stored hashes
// and checks candidates against them.
type PasswordHasher interface {
	// Hash produces a freshly salted stored hash. Two calls with the same
	// plaintext never return the same value. An error means the hasher could
	// not obtain the resources it needs and must not be retried.
	Hash(ctx context.Context, plaintext string) (string, error)

	// Verify reports whether candidate matches storedHash. Malformed stored
	// hashes yield false with no error. An error means the comparison never
	// ran (no free slot or the time budget ran out) and says nothing about
	// the candidate.
	Verify(ctx context.Context, storedHash, candidate string) (bool, error)

	// NeedsRehash reports whether storedHash was produced with a lower cost
	// than the one currently configured.
	NeedsRehash(storedHash string) bool

	// Cost returns the work factor embedded in storedHash.
	Cost(storedHash string) (int, error)

	// ValidatePasswordStrength applies the configured strength policy.
	ValidatePasswordStrength(plaintext string) error
}
