package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kartotek.link/configs/configsdatabase"
	"kartotek.link/configs/configslog"
	"kartotek.link/database"
	"kartotek.link/models"
	"kartotek.link/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupAppTest uygulamayı bellek içi sqlite üzerinde üretim
// konfigürasyonu ile ayağa kaldırır.
func setupAppTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configslog.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
	if err := database.RunMigrationsInOrder(db); err != nil {
		t.Fatalf("test şeması kurulamadı: %v", err)
	}
	configsdatabase.SetDB(db)

	return newApp(), db
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("istek çalıştırılamadı: %v", err)
	}
	return resp
}

func TestSetCardsRouteDecodesEncodedName(t *testing.T) {
	app, db := setupAppTest(t)

	// Gerçek set adları boşluk içerir; rota parametresi yüzde
	// kodlamasıyla gelir ve çözülmüş haliyle eşleşmelidir.
	set := models.Set{Name: "Base Set"}
	if err := db.Create(&set).Error; err != nil {
		t.Fatalf("set oluşturulamadı: %v", err)
	}
	card := models.Card{TCGID: "base1-46", Name: "Charmander", Supertype: "Pokémon", SetID: &set.ID}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("kart oluşturulamadı: %v", err)
	}

	resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/sets/Base%20Set/cards", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("var olan set için durum = %d, beklenen %d", resp.StatusCode, fiber.StatusOK)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("cevap gövdesi okunamadı: %v", err)
	}
	if !strings.Contains(string(body), "base1-46") {
		t.Errorf("cevap setin kartını içermiyor: %s", body)
	}

	resp = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/sets/Hayalet%20Set/cards", nil))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("bilinmeyen set için durum = %d, beklenen %d", resp.StatusCode, fiber.StatusNotFound)
	}
}

func TestCollectionRoutesRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-gizli-anahtar")
	app, db := setupAppTest(t)

	hash, err := utils.HashPassword("pikachu-123")
	if err != nil {
		t.Fatalf("parola hash'lenemedi: %v", err)
	}
	active := models.User{Username: "ash", Email: "ash@example.com", HashedPassword: hash, IsActive: true}
	inactive := models.User{Username: "gary", Email: "gary@example.com", HashedPassword: hash, IsActive: false}
	for _, user := range []*models.User{&active, &inactive} {
		if err := db.Create(user).Error; err != nil {
			t.Fatalf("kullanıcı oluşturulamadı: %v", err)
		}
	}

	activeToken, err := utils.CreateAccessToken(active.Username)
	if err != nil {
		t.Fatalf("token üretilemedi: %v", err)
	}
	inactiveToken, err := utils.CreateAccessToken(inactive.Username)
	if err != nil {
		t.Fatalf("token üretilemedi: %v", err)
	}

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantChallenge bool
	}{
		{name: "başlık yoksa 401", authorization: "", wantStatus: fiber.StatusUnauthorized, wantChallenge: true},
		{name: "bozuk token 401", authorization: "Bearer bozuk.token.degeri", wantStatus: fiber.StatusUnauthorized, wantChallenge: true},
		{name: "Bearer öneki yoksa 401", authorization: activeToken, wantStatus: fiber.StatusUnauthorized, wantChallenge: true},
		{name: "pasif kullanıcı 400", authorization: "Bearer " + inactiveToken, wantStatus: fiber.StatusBadRequest},
		{name: "aktif kullanıcı 200", authorization: "Bearer " + activeToken, wantStatus: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/collection/cards", nil)
			if tt.authorization != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.authorization)
			}
			resp := doRequest(t, app, req)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("durum = %d, beklenen %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantChallenge {
				if got := resp.Header.Get(fiber.HeaderWWWAuthenticate); got != "Bearer" {
					t.Errorf("WWW-Authenticate = %q, beklenen \"Bearer\"", got)
				}
			}
		})
	}
}
