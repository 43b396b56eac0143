package credentials

import (
	"warbler/warbler/types"

	"golang.org/x/crypto/bcrypt"
)

// Hash runs the plaintext through bcrypt with the default cost. Empty
// plaintext is rejected before hashing.
func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", types.ErrInvalidInput
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the stored digest. A
// mismatch is false, never an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
