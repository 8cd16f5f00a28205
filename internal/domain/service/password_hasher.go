// Package service declares the ports the usecases depend on for work that
// lives outside the domain model: hashing, tokens, blobs, events and QR codes.
package service

// PasswordHasher hashes account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
