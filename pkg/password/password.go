// Package password is the credential store: hashing and verification of
// principal passwords. Callers hash exactly when a password is being set, so
// an already-hashed value is never re-hashed on unrelated updates.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash derives a salted bcrypt hash from a plaintext password. A failure here
// must abort the surrounding write: a principal is never persisted with a
// plaintext password.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
