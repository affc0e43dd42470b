package repositories

import (
	"context"
	"errors"
	"testing"

	"kartotek.link/configs/configslog"
	"kartotek.link/database"
	"kartotek.link/models"
	"kartotek.link/pkg/queryparams"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB bellek içi sqlite üzerinde tam şemayı kurar.
func openTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// seedCatalog testlerin kullandığı küçük kataloğu doldurur:
// 2 set, 2 nadirlik, 2 tip, 4 kart (3 Pokémon + 1 Trainer).
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	base := models.Set{Name: "Base"}
	jungle := models.Set{Name: "Jungle"}
	common := models.Rarity{Name: "Common"}
	rare := models.Rarity{Name: "Rare"}
	fire := models.Type{Name: "Fire"}
	water := models.Type{Name: "Water"}
	basic := models.Subtype{Name: "Basic"}

	for _, record := range []interface{}{&base, &jungle, &common, &rare, &fire, &water, &basic} {
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("lookup kaydı eklenemedi: %v", err)
		}
	}

	cards := []models.Card{
		{
			TCGID: "bw1-1", Name: "Charmander", Supertype: "Pokémon", HP: intPtr(60),
			NumberInSet: strPtr("1/102"), SetID: &base.ID, RarityID: &common.ID,
			Types:   []models.Type{fire},
			Attacks: []models.Attack{{Name: strPtr("Ember"), Damage: strPtr("30")}},
		},
		{
			TCGID: "bw1-2", Name: "Charizard", Supertype: "Pokémon", HP: intPtr(120),
			SetID: &base.ID, RarityID: &rare.ID,
			Types:    []models.Type{fire},
			Subtypes: []models.Subtype{basic},
			Attacks: []models.Attack{
				{Name: strPtr("Fire Spin"), Damage: strPtr("100")},
				{Name: strPtr("Fire Blast"), Damage: strPtr("120")},
			},
		},
		{
			TCGID: "bw1-3", Name: "Squirtle", Supertype: "Pokémon", HP: intPtr(50),
			SetID: &jungle.ID, RarityID: &common.ID,
			Types:   []models.Type{water},
			Attacks: []models.Attack{{Name: strPtr("Bubble")}},
		},
		{
			TCGID: "bw1-4", Name: "Potion", Supertype: "Trainer",
			SetID: &base.ID, RarityID: &common.ID,
			Rules: []models.Rule{{Text: "Heal 30 damage from 1 of your Pokémon."}},
		},
	}
	for i := range cards {
		if err := db.Create(&cards[i]).Error; err != nil {
			t.Fatalf("kart eklenemedi (%s): %v", cards[i].TCGID, err)
		}
	}
}

func searchTCGIDs(t *testing.T, repo ICardRepository, params queryparams.CardFilterParams) ([]string, int64) {
	t.Helper()
	params.Validate()
	cards, total, err := repo.SearchCards(context.Background(), params)
	if err != nil {
		t.Fatalf("SearchCards hata döndürdü: %v", err)
	}
	ids := make([]string, len(cards))
	for i, card := range cards {
		ids[i] = card.TCGID
	}
	return ids, total
}

func TestSearchCardsFilters(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewCardRepositoryTx(db)

	tests := []struct {
		name      string
		params    queryparams.CardFilterParams
		wantIDs   []string
		wantTotal int64
	}{
		{
			name:      "filtre yoksa tüm kartlar",
			params:    queryparams.CardFilterParams{},
			wantIDs:   []string{"bw1-1", "bw1-2", "bw1-3", "bw1-4"},
			wantTotal: 4,
		},
		{
			name:      "isim araması büyük/küçük harf duyarsız",
			params:    queryparams.CardFilterParams{Name: "char"},
			wantIDs:   []string{"bw1-1", "bw1-2"},
			wantTotal: 2,
		},
		{
			name:      "supertype tam eşleşme",
			params:    queryparams.CardFilterParams{Supertype: "Trainer"},
			wantIDs:   []string{"bw1-4"},
			wantTotal: 1,
		},
		{
			name:      "tip filtresi",
			params:    queryparams.CardFilterParams{Type: "Fire"},
			wantIDs:   []string{"bw1-1", "bw1-2"},
			wantTotal: 2,
		},
		{
			name:      "alt tip filtresi",
			params:    queryparams.CardFilterParams{Subtype: "Basic"},
			wantIDs:   []string{"bw1-2"},
			wantTotal: 1,
		},
		{
			name:      "nadirlik ve set birlikte",
			params:    queryparams.CardFilterParams{Rarity: "Common", SetName: "Base"},
			wantIDs:   []string{"bw1-1", "bw1-4"},
			wantTotal: 2,
		},
		{
			name:      "set numarası tam eşleşme",
			params:    queryparams.CardFilterParams{NumberInSet: "1/102"},
			wantIDs:   []string{"bw1-1"},
			wantTotal: 1,
		},
		{
			name:      "hp aralığı alt sınır dahil üst sınır hariç",
			params:    queryparams.CardFilterParams{HPGte: intPtr(50), HPLt: intPtr(120)},
			wantIDs:   []string{"bw1-1", "bw1-3"},
			wantTotal: 2,
		},
		{
			name:      "filtre eklemek sonucu asla genişletmez",
			params:    queryparams.CardFilterParams{Name: "char", HPGte: intPtr(100)},
			wantIDs:   []string{"bw1-2"},
			wantTotal: 1,
		},
		{
			name: "saldırı adı eşleşmesi kartı tekilleştirir",
			// Charizard'ın iki saldırısı da "fire" içerir; kart bir kez sayılmalı.
			params:    queryparams.CardFilterParams{AttackName: "fire"},
			wantIDs:   []string{"bw1-2"},
			wantTotal: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIDs, gotTotal := searchTCGIDs(t, repo, tt.params)
			if gotTotal != tt.wantTotal {
				t.Errorf("total = %d, beklenen %d", gotTotal, tt.wantTotal)
			}
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("sonuç = %v, beklenen %v", gotIDs, tt.wantIDs)
			}
			for i := range tt.wantIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Errorf("sonuç = %v, beklenen %v", gotIDs, tt.wantIDs)
					break
				}
			}
		})
	}
}

func TestSearchCardsPagination(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewCardRepositoryTx(db)

	page1, total := searchTCGIDs(t, repo, queryparams.CardFilterParams{Page: 1, PerPage: 3})
	if total != 4 {
		t.Errorf("total = %d, beklenen 4", total)
	}
	if len(page1) != 3 {
		t.Errorf("1. sayfa %d kart döndürdü, beklenen 3", len(page1))
	}

	page2, _ := searchTCGIDs(t, repo, queryparams.CardFilterParams{Page: 2, PerPage: 3})
	if len(page2) != 1 {
		t.Errorf("2. sayfa %d kart döndürdü, beklenen 1", len(page2))
	}
	if queryparams.CalculateTotalPages(total, 3) != 2 {
		t.Errorf("toplam sayfa sayısı 2 olmalı")
	}

	// Sayfalar kesişmemeli; sıralama ID'ye göre deterministik.
	if page1[0] != "bw1-1" || page2[0] != "bw1-4" {
		t.Errorf("sayfalama sıralaması beklendiği gibi değil: %v / %v", page1, page2)
	}
}

func TestFindByTCGIDRoundTrip(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewCardRepositoryTx(db)

	card, err := repo.FindByTCGID(context.Background(), "bw1-2")
	if err != nil {
		t.Fatalf("FindByTCGID hata döndürdü: %v", err)
	}
	if card.Name != "Charizard" || card.Supertype != "Pokémon" {
		t.Errorf("kart alanları beklendiği gibi değil: %+v", card)
	}
	if card.HP == nil || *card.HP != 120 {
		t.Errorf("hp = %v, beklenen 120", card.HP)
	}
	if card.Set == nil || card.Set.Name != "Base" {
		t.Errorf("set yüklenmedi: %+v", card.Set)
	}
	if card.Rarity == nil || card.Rarity.Name != "Rare" {
		t.Errorf("nadirlik yüklenmedi: %+v", card.Rarity)
	}
	if len(card.Types) != 1 || card.Types[0].Name != "Fire" {
		t.Errorf("tipler yüklenmedi: %+v", card.Types)
	}
	if len(card.Subtypes) != 1 || card.Subtypes[0].Name != "Basic" {
		t.Errorf("alt tipler yüklenmedi: %+v", card.Subtypes)
	}
	if len(card.Attacks) != 2 {
		t.Errorf("saldırılar yüklenmedi: %+v", card.Attacks)
	}

	if _, err := repo.FindByTCGID(context.Background(), "yok-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("bilinmeyen kart ErrNotFound döndürmeliydi, hata: %v", err)
	}
}

func TestFindAllBySetIDOrdersByID(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewCardRepositoryTx(db)

	var base models.Set
	if err := db.Where("name = ?", "Base").First(&base).Error; err != nil {
		t.Fatalf("set bulunamadı: %v", err)
	}

	cards, err := repo.FindAllBySetID(context.Background(), base.ID)
	if err != nil {
		t.Fatalf("FindAllBySetID hata döndürdü: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("kart sayısı = %d, beklenen 3", len(cards))
	}
	for i := 1; i < len(cards); i++ {
		if cards[i-1].ID > cards[i].ID {
			t.Errorf("kartlar ID sırasında değil: %v", cards)
			break
		}
	}
}
