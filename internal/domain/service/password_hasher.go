// Package service declares the stateless capabilities the use cases depend
// on. Implementations live under infra.
package service

// PasswordHasher turns account passwords into salted one-way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produces hash. Malformed hashes never match.
	Check(password, hash string) bool
}
