// ingest/ingest.go
package ingest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"kartotek.link/configs/configslog"
	"kartotek.link/database"
	"kartotek.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// releaseDateLayout kaynak verideki tarih formatıdır (örn: "2023/03/31").
const releaseDateLayout = "2006/01/02"

// imageMountPath web sunucusunun kart görsellerini yayınladığı sabit yoldur.
const imageMountPath = "/images"

// flexString hem JSON string hem sayı olarak gelebilen alanları okur.
// Kaynak dosyalarda hp genellikle string'dir ("60") ama sayı da görülür.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// Kaynak JSON kayıt şeması. Bir dosya = bir kart.
type setRecord struct {
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	ReleaseDate string `json:"releaseDate"`
	Number      string `json:"number"`
}

type attackRecord struct {
	Name   string   `json:"name"`
	Cost   []string `json:"cost"`
	Damage string   `json:"damage"`
	Text   string   `json:"text"`
}

type abilityRecord struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Type string `json:"type"`
}

type cardRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Supertype   string          `json:"supertype"`
	HP          flexString      `json:"hp"`
	EvolvesFrom string          `json:"evolvesFrom"`
	Artist      string          `json:"artist"`
	Set         *setRecord      `json:"set"`
	Types       []string        `json:"types"`
	Subtypes    []string        `json:"subtypes"`
	Attacks     []attackRecord  `json:"attacks"`
	Abilities   []abilityRecord `json:"abilities"`
	Rules       []string        `json:"rules"`
}

// lookupMaps lookup tablolarının ad -> id eşlemelerini tutar.
type lookupMaps struct {
	sets     map[string]uint
	rarities map[string]uint
	types    map[string]uint
	subtypes map[string]uint
	artists  map[string]uint
}

// Run tüm ingest sürecini çalıştırır: şemayı sıfırlar, kaynak dizindeki
// JSON kayıtlarını iki geçişte okur ve veritabanını tek transaction
// içinde doldurur. Süreç baştan çalıştırılmak üzere tasarlanmıştır;
// yarıda kesilirse veritabanı kısmen dolu kalır ve ingest tekrarlanmalıdır.
func Run(db *gorm.DB, dataDir string) error {
	configslog.SLog.Info("--- Kart ingest süreci başlıyor ---")

	if err := database.ResetSchema(db); err != nil {
		return fmt.Errorf("şema sıfırlanamadı: %w", err)
	}

	files, err := collectRecordFiles(dataDir)
	if err != nil {
		return err
	}
	configslog.SLog.Infof("%d kayıt dosyası bulundu.", len(files))

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("transaction başlatılamadı: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	configslog.SLog.Info("[1/3] Benzersiz lookup değerleri toplanıyor...")
	maps, err := buildLookupTables(tx, files)
	if err != nil {
		tx.Rollback()
		return err
	}

	configslog.SLog.Info("[2/3] Kartlar ve ilişkileri ekleniyor...")
	if err := insertCards(tx, files, dataDir, maps); err != nil {
		tx.Rollback()
		return err
	}

	configslog.SLog.Info("[3/3] Final commit yapılıyor...")
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit başarısız: %w", err)
	}

	configslog.SLog.Info("--- Kart ingest süreci başarıyla tamamlandı ---")
	return nil
}

// collectRecordFiles dizin ağacındaki tüm .json dosyalarını listeler.
func collectRecordFiles(dataDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("kaynak dizin taranamadı (%s): %w", dataDir, err)
	}
	return files, nil
}

func readRecord(path string) (*cardRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kayıt dosyası okunamadı (%s): %w", path, err)
	}
	var rec cardRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("kayıt dosyası çözümlenemedi (%s): %w", path, err)
	}
	return &rec, nil
}

// buildLookupTables ilk geçişte benzersiz değerleri toplar, ada göre
// sıralı şekilde ekler (deterministik ID'ler için) ve ad -> id
// eşlemelerini döndürür. Çözümlenemeyen tarihler uyarı ile NULL kalır.
func buildLookupTables(tx *gorm.DB, files []string) (*lookupMaps, error) {
	setNames := map[string]struct{}{}
	setReleaseDates := map[string]string{}
	rarityNames := map[string]struct{}{}
	typeNames := map[string]struct{}{}
	subtypeNames := map[string]struct{}{}
	artistNames := map[string]struct{}{}

	for _, path := range files {
		rec, err := readRecord(path)
		if err != nil {
			return nil, err
		}

		if rec.Set != nil {
			if rec.Set.Name != "" {
				setNames[rec.Set.Name] = struct{}{}
				// İlk görülen tarih kazanır.
				if _, seen := setReleaseDates[rec.Set.Name]; !seen && rec.Set.ReleaseDate != "" {
					setReleaseDates[rec.Set.Name] = rec.Set.ReleaseDate
				}
			}
			if rec.Set.Rarity != "" {
				rarityNames[rec.Set.Rarity] = struct{}{}
			}
		}
		for _, name := range rec.Types {
			if name != "" {
				typeNames[name] = struct{}{}
			}
		}
		for _, name := range rec.Subtypes {
			if name != "" {
				subtypeNames[name] = struct{}{}
			}
		}
		if rec.Artist != "" {
			artistNames[rec.Artist] = struct{}{}
		}
	}

	maps := &lookupMaps{
		sets:     map[string]uint{},
		rarities: map[string]uint{},
		types:    map[string]uint{},
		subtypes: map[string]uint{},
		artists:  map[string]uint{},
	}

	for _, name := range sortedKeys(setNames) {
		var releaseDate *time.Time
		if dateStr := setReleaseDates[name]; dateStr != "" {
			parsed, err := time.Parse(releaseDateLayout, dateStr)
			if err != nil {
				configslog.SLog.Warnf("Set '%s' için geçersiz tarih formatı: %q", name, dateStr)
			} else {
				releaseDate = &parsed
			}
		}
		set := models.Set{Name: name, ReleaseDate: releaseDate}
		if err := tx.Create(&set).Error; err != nil {
			return nil, fmt.Errorf("set eklenemedi (%s): %w", name, err)
		}
		maps.sets[name] = set.ID
	}

	for _, name := range sortedKeys(rarityNames) {
		rarity := models.Rarity{Name: name}
		if err := tx.Create(&rarity).Error; err != nil {
			return nil, fmt.Errorf("nadirlik eklenemedi (%s): %w", name, err)
		}
		maps.rarities[name] = rarity.ID
	}
	for _, name := range sortedKeys(typeNames) {
		typ := models.Type{Name: name}
		if err := tx.Create(&typ).Error; err != nil {
			return nil, fmt.Errorf("tip eklenemedi (%s): %w", name, err)
		}
		maps.types[name] = typ.ID
	}
	for _, name := range sortedKeys(subtypeNames) {
		subtype := models.Subtype{Name: name}
		if err := tx.Create(&subtype).Error; err != nil {
			return nil, fmt.Errorf("alt tip eklenemedi (%s): %w", name, err)
		}
		maps.subtypes[name] = subtype.ID
	}
	for _, name := range sortedKeys(artistNames) {
		artist := models.Artist{Name: name}
		if err := tx.Create(&artist).Error; err != nil {
			return nil, fmt.Errorf("illüstratör eklenemedi (%s): %w", name, err)
		}
		maps.artists[name] = artist.ID
	}

	configslog.SLog.Infof("Lookup tabloları dolduruldu: %d set, %d nadirlik, %d tip, %d alt tip, %d illüstratör.",
		len(maps.sets), len(maps.rarities), len(maps.types), len(maps.subtypes), len(maps.artists))
	return maps, nil
}

// insertCards ikinci geçişte kart satırlarını, ilişkilerini ve çocuk
// kayıtlarını ekler. Eksik lookup eşleşmeleri hata değildir; FK NULL kalır.
func insertCards(tx *gorm.DB, files []string, dataDir string, maps *lookupMaps) error {
	for _, path := range files {
		rec, err := readRecord(path)
		if err != nil {
			return err
		}

		// Zorunlu alanlar eksikse tüm süreç iptal edilir.
		if rec.ID == "" || rec.Name == "" || rec.Supertype == "" {
			return fmt.Errorf("kayıt dosyasında zorunlu alan eksik (%s): id, name ve supertype gerekli", path)
		}

		card := models.Card{
			TCGID:     rec.ID,
			Name:      rec.Name,
			ImageURL:  deriveImageURL(dataDir, path),
			Supertype: rec.Supertype,
			HP:        parseHP(string(rec.HP)),
		}
		if rec.EvolvesFrom != "" {
			card.EvolvesFrom = &rec.EvolvesFrom
		}
		if rec.Set != nil {
			if rec.Set.Number != "" {
				number := rec.Set.Number
				card.NumberInSet = &number
			}
			if id, ok := maps.sets[rec.Set.Name]; ok {
				card.SetID = &id
			}
			if id, ok := maps.rarities[rec.Set.Rarity]; ok {
				card.RarityID = &id
			}
		}
		if id, ok := maps.artists[rec.Artist]; ok {
			card.ArtistID = &id
		}

		// Create hem kartı ekler hem üretilen ID'yi doldurur (ara flush).
		if err := tx.Create(&card).Error; err != nil {
			return fmt.Errorf("kart eklenemedi (%s): %w", rec.ID, err)
		}

		// Tip/alt tip ilişkileri: daha önce eklenen lookup satırları
		// ad listesine göre bulunur ve ara tabloya yazılır.
		if len(rec.Types) > 0 {
			var types []models.Type
			if err := tx.Where("name IN ?", rec.Types).Find(&types).Error; err != nil {
				return fmt.Errorf("tipler sorgulanamadı (%s): %w", rec.ID, err)
			}
			if err := tx.Model(&card).Association("Types").Append(&types); err != nil {
				return fmt.Errorf("tip ilişkisi kurulamadı (%s): %w", rec.ID, err)
			}
		}
		if len(rec.Subtypes) > 0 {
			var subtypes []models.Subtype
			if err := tx.Where("name IN ?", rec.Subtypes).Find(&subtypes).Error; err != nil {
				return fmt.Errorf("alt tipler sorgulanamadı (%s): %w", rec.ID, err)
			}
			if err := tx.Model(&card).Association("Subtypes").Append(&subtypes); err != nil {
				return fmt.Errorf("alt tip ilişkisi kurulamadı (%s): %w", rec.ID, err)
			}
		}

		for _, atk := range rec.Attacks {
			attack := models.Attack{CardID: card.ID}
			if atk.Name != "" {
				name := atk.Name
				attack.Name = &name
			}
			cost := strings.Join(atk.Cost, ", ")
			attack.Cost = &cost
			if atk.Damage != "" {
				damage := atk.Damage
				attack.Damage = &damage
			}
			if atk.Text != "" {
				text := atk.Text
				attack.Text = &text
			}
			if err := tx.Create(&attack).Error; err != nil {
				return fmt.Errorf("saldırı eklenemedi (%s): %w", rec.ID, err)
			}
		}

		for _, abl := range rec.Abilities {
			ability := models.Ability{CardID: card.ID, Name: abl.Name}
			if abl.Text != "" {
				text := abl.Text
				ability.Text = &text
			}
			if abl.Type != "" {
				abilityType := abl.Type
				ability.Type = &abilityType
			}
			if err := tx.Create(&ability).Error; err != nil {
				return fmt.Errorf("yetenek eklenemedi (%s): %w", rec.ID, err)
			}
		}

		for _, ruleText := range rec.Rules {
			if ruleText == "" {
				continue
			}
			rule := models.Rule{CardID: card.ID, Text: ruleText}
			if err := tx.Create(&rule).Error; err != nil {
				return fmt.Errorf("kural eklenemedi (%s): %w", rec.ID, err)
			}
		}
	}

	configslog.SLog.Infof("%d kart eklendi.", len(files))
	return nil
}

// deriveImageURL kayıt dosyasının ingest köküne göre göreli yolundan
// görsel URL'sini türetir: uzantı .png yapılır, ayraçlar '/' olur ve
// başına /images mount yolu eklenir. Örn: "bw1/bw1-1.json" -> "/images/bw1/bw1-1.png".
func deriveImageURL(dataDir, recordPath string) string {
	rel, err := filepath.Rel(dataDir, recordPath)
	if err != nil {
		// Göreli yol çıkarılamazsa dosya adına düşülür.
		configslog.Log.Warn("Göreli görsel yolu türetilemedi", zap.String("path", recordPath), zap.Error(err))
		rel = filepath.Base(recordPath)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".png"
	return imageMountPath + "/" + filepath.ToSlash(rel)
}

// parseHP hp alanını yalnızca tamamı rakamsa tam sayıya çevirir; aksi halde NULL.
func parseHP(hp string) *int {
	if hp == "" {
		return nil
	}
	for _, r := range hp {
		if r < '0' || r > '9' {
			return nil
		}
	}
	value, err := strconv.Atoi(hp)
	if err != nil {
		return nil
	}
	return &value
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
