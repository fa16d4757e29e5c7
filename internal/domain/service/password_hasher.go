// Package service defines interfaces for stateless domain services.
package service

// PasswordHasher abstracts the one-way password hashing algorithm.
type PasswordHasher interface {
	// Hash returns a salted hash of password. A fresh salt is drawn on every call.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
