package services

import (
	"context"
	"errors"
	"testing"

	"kartotek.link/models"
	"kartotek.link/pkg/queryparams"
	"kartotek.link/repositories"

	"gorm.io/gorm"
)

func newCardServiceForTest(db *gorm.DB) ICardService {
	return NewCardServiceWithRepos(
		repositories.NewCardRepositoryTx(db),
		repositories.NewLookupRepositoryTx(db),
	)
}

func seedSmallCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	base := models.Set{Name: "Base"}
	if err := db.Create(&base).Error; err != nil {
		t.Fatalf("set oluşturulamadı: %v", err)
	}
	for _, tcgID := range []string{"bw1-1", "bw1-2", "bw1-3"} {
		card := models.Card{TCGID: tcgID, Name: "Kart", Supertype: "Pokémon", SetID: &base.ID}
		if err := db.Create(&card).Error; err != nil {
			t.Fatalf("kart oluşturulamadı: %v", err)
		}
	}
}

func TestSearchCardsPaginationMeta(t *testing.T) {
	db := setupServiceTestDB(t)
	seedSmallCatalog(t, db)
	service := newCardServiceForTest(db)

	result, err := service.SearchCards(context.Background(), queryparams.CardFilterParams{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("SearchCards hata döndürdü: %v", err)
	}
	meta := result.Meta
	if meta.Page != 1 || meta.PerPage != 2 {
		t.Errorf("sayfa bilgisi = %+v, beklenen page=1 page_size=2", meta)
	}
	if meta.TotalItems != 3 || meta.TotalPages != 2 {
		t.Errorf("toplamlar = %+v, beklenen total_items=3 total_pages=2", meta)
	}
	cards, ok := result.Data.([]models.Card)
	if !ok {
		t.Fatalf("Data []models.Card olmalı, %T geldi", result.Data)
	}
	if len(cards) != 2 {
		t.Errorf("sayfa %d kart içeriyor, beklenen 2", len(cards))
	}
}

func TestSearchCardsNormalizesPageParams(t *testing.T) {
	db := setupServiceTestDB(t)
	seedSmallCatalog(t, db)
	service := newCardServiceForTest(db)

	// Geçersiz sayfa değerleri varsayılanlara çekilir, hata üretmez.
	result, err := service.SearchCards(context.Background(), queryparams.CardFilterParams{Page: -5, PerPage: 100000})
	if err != nil {
		t.Fatalf("SearchCards hata döndürdü: %v", err)
	}
	if result.Meta.Page != queryparams.DefaultPage || result.Meta.PerPage != queryparams.DefaultPerPage {
		t.Errorf("normalize edilmiş sayfa bilgisi = %+v", result.Meta)
	}
}

func TestGetCardsBySetName(t *testing.T) {
	db := setupServiceTestDB(t)
	seedSmallCatalog(t, db)
	service := newCardServiceForTest(db)
	ctx := context.Background()

	cards, err := service.GetCardsBySetName(ctx, "Base")
	if err != nil {
		t.Fatalf("GetCardsBySetName hata döndürdü: %v", err)
	}
	if len(cards) != 3 {
		t.Errorf("set %d kart döndürdü, beklenen 3", len(cards))
	}

	// Bilinmeyen set boş liste değil not-found hatasıdır.
	if _, err := service.GetCardsBySetName(ctx, "Hayalet Set"); !errors.Is(err, ErrSetNotFound) {
		t.Errorf("bilinmeyen set ErrSetNotFound döndürmeliydi, hata: %v", err)
	}
}

func TestGetCardByTCGIDNotFound(t *testing.T) {
	db := setupServiceTestDB(t)
	service := newCardServiceForTest(db)

	if _, err := service.GetCardByTCGID(context.Background(), "yok-1"); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("bilinmeyen kart ErrCardNotFound döndürmeliydi, hata: %v", err)
	}
}
