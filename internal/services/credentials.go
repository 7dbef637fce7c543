package services

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword produces a salted one-way hash; the same input yields a
// different stored value on every call.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports only whether the password matches, never why a
// comparison failed.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
