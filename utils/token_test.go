package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateAccessToken("ash")
	if err != nil {
		t.Fatalf("CreateAccessToken hata döndürdü: %v", err)
	}

	username, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken hata döndürdü: %v", err)
	}
	if username != "ash" {
		t.Errorf("subject = %q, beklenen %q", username, "ash")
	}
}

func TestTokenWrongKeyRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "dogru-anahtar")
	token, err := CreateAccessToken("ash")
	if err != nil {
		t.Fatalf("CreateAccessToken hata döndürdü: %v", err)
	}

	// Farklı anahtarla imzalanmış gibi doğrulama yapılır.
	t.Setenv("JWT_SECRET", "yanlis-anahtar")
	if _, err := ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("yanlış anahtarla imzalanan token reddedilmeliydi, hata: %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// Süresi geçmiş bir token üretilir.
	claims := jwt.RegisteredClaims{
		Subject:   "ash",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("test token'ı üretilemedi: %v", err)
	}

	if _, err := ParseAccessToken(expired); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("süresi dolmuş token reddedilmeliydi, hata: %v", err)
	}
}

func TestTokenWithoutSubjectRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("test token'ı üretilemedi: %v", err)
	}

	if _, err := ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("subject'i olmayan token reddedilmeliydi, hata: %v", err)
	}
}
