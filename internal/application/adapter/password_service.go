// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword returns an encoded salted one-way hash of the password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with an encoded hash.
	// It returns nil only when they match.
	VerifyPassword(hashedPassword, password string) error
}
