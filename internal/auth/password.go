package auth

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is enforced before any persistence happens.
	MinPasswordLength = 6

	resetPasswordLength  = 12
	resetPasswordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
)

// HashPassword bcrypt-hashes a plaintext credential with the given cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// RandomPassword generates the temporary credential mailed out on reset:
// fixed length, mixed-character alphabet, crypto/rand source.
func RandomPassword() (string, error) {
	buf := make([]byte, resetPasswordLength)
	max := big.NewInt(int64(len(resetPasswordCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = resetPasswordCharset[n.Int64()]
	}
	return string(buf), nil
}
