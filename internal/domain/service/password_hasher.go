// Package service defines domain-level service contracts implemented by the
// infrastructure layer.
package service

// PasswordHasher hashes the generated initial password of created user
// accounts. Credential verification belongs to the external auth service.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
