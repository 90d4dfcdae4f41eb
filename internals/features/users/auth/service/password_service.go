// internals/features/users/auth/service/password_service.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword meng-hash password plaintext dengan bcrypt (default cost).
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword membandingkan hash tersimpan dengan kandidat plaintext.
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
