package services

import (
	"context"
	"errors"
	"testing"

	"kartotek.link/models"
	"kartotek.link/repositories"
	"kartotek.link/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-gizli-anahtar")

	db := setupServiceTestDB(t)
	service := NewAuthServiceWithRepo(repositories.NewUserRepositoryTx(db))
	ctx := context.Background()

	user, err := service.Register(ctx, "ash", "ash@example.com", "pikachu-123")
	if err != nil {
		t.Fatalf("Register hata döndürdü: %v", err)
	}
	if user.ID == 0 {
		t.Errorf("kullanıcıya ID atanmadı")
	}
	if !user.IsActive {
		t.Errorf("yeni kullanıcı aktif olmalı")
	}
	if user.HashedPassword == "pikachu-123" || user.HashedPassword == "" {
		t.Errorf("parola düz metin olarak saklanmamalı")
	}

	token, err := service.Login(ctx, "ash", "pikachu-123")
	if err != nil {
		t.Fatalf("Login hata döndürdü: %v", err)
	}
	username, err := utils.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("üretilen token doğrulanamadı: %v", err)
	}
	if username != "ash" {
		t.Errorf("token subject = %q, beklenen \"ash\"", username)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	db := setupServiceTestDB(t)
	service := NewAuthServiceWithRepo(repositories.NewUserRepositoryTx(db))
	ctx := context.Background()

	if _, err := service.Register(ctx, "ash", "ash@example.com", "pikachu-123"); err != nil {
		t.Fatalf("ilk kayıt başarısız: %v", err)
	}

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"aynı kullanıcı adı", "ash", "baska@example.com"},
		{"aynı e-posta", "baska", "ash@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.username, tt.email, "pikachu-123")
			if !errors.Is(err, ErrUserAlreadyExists) {
				t.Errorf("çakışan kayıt ErrUserAlreadyExists döndürmeliydi, hata: %v", err)
			}
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-gizli-anahtar")

	db := setupServiceTestDB(t)
	service := NewAuthServiceWithRepo(repositories.NewUserRepositoryTx(db))
	ctx := context.Background()

	if _, err := service.Register(ctx, "ash", "ash@example.com", "pikachu-123"); err != nil {
		t.Fatalf("kayıt başarısız: %v", err)
	}

	// Yanlış parola ile bilinmeyen kullanıcı aynı hatayı döndürür.
	if _, err := service.Login(ctx, "ash", "yanlis-parola"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("yanlış parola ErrInvalidCredentials döndürmeliydi, hata: %v", err)
	}
	if _, err := service.Login(ctx, "bilinmeyen", "pikachu-123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bilinmeyen kullanıcı ErrInvalidCredentials döndürmeliydi, hata: %v", err)
	}
}

func TestGetUserFromToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-gizli-anahtar")

	db := setupServiceTestDB(t)
	service := NewAuthServiceWithRepo(repositories.NewUserRepositoryTx(db))
	ctx := context.Background()

	if _, err := service.Register(ctx, "ash", "ash@example.com", "pikachu-123"); err != nil {
		t.Fatalf("kayıt başarısız: %v", err)
	}
	token, err := service.Login(ctx, "ash", "pikachu-123")
	if err != nil {
		t.Fatalf("Login hata döndürdü: %v", err)
	}

	user, err := service.GetUserFromToken(ctx, token)
	if err != nil {
		t.Fatalf("GetUserFromToken hata döndürdü: %v", err)
	}
	if user.Username != "ash" {
		t.Errorf("kullanıcı adı = %q, beklenen \"ash\"", user.Username)
	}

	if _, err := service.GetUserFromToken(ctx, "bozuk.token.degeri"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("geçersiz token ErrUnauthorized döndürmeliydi, hata: %v", err)
	}

	// Token geçerli ama kullanıcı artık yoksa yine yetkisiz.
	orphanToken, err := utils.CreateAccessToken("silinmis")
	if err != nil {
		t.Fatalf("token üretilemedi: %v", err)
	}
	if _, err := service.GetUserFromToken(ctx, orphanToken); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("sahipsiz token ErrUnauthorized döndürmeliydi, hata: %v", err)
	}
}

func TestGetCollectionEntriesAreUserRows(t *testing.T) {
	db := setupServiceTestDB(t)

	// Koleksiyon satırı kullanıcı ve karta FK ile bağlıdır; model düzeyinde
	// bileşik anahtar aynı çift için ikinci satıra izin vermez.
	user, card := seedUserAndCard(t, db)
	first := models.UserCollection{UserID: user.ID, CardID: card.ID, Quantity: 1}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("koleksiyon satırı oluşturulamadı: %v", err)
	}
	duplicate := models.UserCollection{UserID: user.ID, CardID: card.ID, Quantity: 5}
	if err := db.Create(&duplicate).Error; err == nil {
		t.Errorf("aynı (user, card) çifti için ikinci satır reddedilmeliydi")
	}
}
