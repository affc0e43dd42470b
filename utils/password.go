// utils/password.go
package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword parolayı bcrypt ile hash'ler.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash düz metin parolayı hash ile karşılaştırır.
// bcrypt karşılaştırması zamanlama saldırılarına karşı güvenlidir.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
