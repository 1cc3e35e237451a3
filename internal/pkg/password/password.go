package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash creates a bcrypt hash from the given plaintext password.
func Hash(plaintext string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify checks if the provided plaintext password matches the stored hash.
func Verify(hashedPassword, providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
}
