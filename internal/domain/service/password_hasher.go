// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrMalformedHash is returned when a stored credential has no embedded salt
// or otherwise does not parse as an encoded hash.
var ErrMalformedHash = errors.New("malformed password hash")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key-derivation function (argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password using a
	// deliberately slow, memory-hard function with fixed cost parameters.
	Hash(password string) (string, error)

	// Check compares a plaintext password with an encoded hash in constant
	// time. Returns ErrMalformedHash when the stored value does not parse.
	Check(password, encoded string) (bool, error)
}
