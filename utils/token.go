// utils/token.go
package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenExpiryMinutes = 30

var ErrInvalidToken = errors.New("geçersiz veya süresi dolmuş token")

// jwtSecret imzalama anahtarını ortamdan okur.
// Test ortamında JWT_SECRET set edilmemişse sabit bir değer kullanılmaz;
// boş anahtarla üretilen tokenlar yine kendi içinde tutarlıdır ancak
// üretimde JWT_SECRET mutlaka tanımlanmalıdır.
func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func tokenExpiry() time.Duration {
	if v := os.Getenv("TOKEN_EXPIRY_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultTokenExpiryMinutes * time.Minute
}

// CreateAccessToken verilen kullanıcı adı için HS256 imzalı JWT üretir.
// Claim'ler: sub (kullanıcı adı) ve exp (son geçerlilik).
func CreateAccessToken(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExpiry())),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseAccessToken token'ı doğrular ve subject'teki kullanıcı adını döndürür.
// İmza geçersizse, süresi dolmuşsa veya subject boşsa ErrInvalidToken döner.
func ParseAccessToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
