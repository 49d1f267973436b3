// Package service declares the stateless capabilities the usecases depend on.
package service

// PasswordHasher produces and verifies stored password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Matches reports whether password hashes to hash. A malformed hash never matches.
	Matches(hash, password string) bool
}
