// repositories/lookup_repository.go
package repositories

import (
	"context"
	"errors"

	"kartotek.link/configs/configsdatabase"
	"kartotek.link/configs/configslog"
	"kartotek.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ILookupRepository boyut tabloları (set, nadirlik, tip) için okuma arayüzü.
// Bu tablolar sadece ingest sırasında yazılır; API tarafında salt okunurdur.
type ILookupRepository interface {
	FindSetByName(ctx context.Context, name string) (*models.Set, error)
	GetAllSets(ctx context.Context) ([]models.Set, error)
	GetAllRarities(ctx context.Context) ([]models.Rarity, error)
	GetAllTypes(ctx context.Context) ([]models.Type, error)
}

// LookupRepository ILookupRepository arayüzünü uygular.
type LookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository yeni bir LookupRepository örneği oluşturur.
func NewLookupRepository() ILookupRepository {
	return &LookupRepository{db: configsdatabase.GetDB()}
}

// NewLookupRepositoryTx transaction'a bağlı bir LookupRepository oluşturur.
func NewLookupRepositoryTx(tx *gorm.DB) ILookupRepository {
	return &LookupRepository{db: tx}
}

// FindSetByName tam ad eşleşmesi ile seti bulur.
func (r *LookupRepository) FindSetByName(ctx context.Context, name string) (*models.Set, error) {
	if name == "" {
		return nil, errors.New("aranacak set adı boş olamaz")
	}
	var set models.Set
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&set).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("LookupRepository.FindSetByName: DB error", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &set, nil
}

// GetAllSets tüm setleri ada göre sıralı listeler.
func (r *LookupRepository) GetAllSets(ctx context.Context) ([]models.Set, error) {
	var sets []models.Set
	err := r.db.WithContext(ctx).Order("name ASC").Find(&sets).Error
	if err != nil {
		configslog.Log.Error("LookupRepository.GetAllSets: DB error", zap.Error(err))
		return nil, err
	}
	return sets, nil
}

// GetAllRarities tüm nadirlikleri ada göre sıralı listeler.
func (r *LookupRepository) GetAllRarities(ctx context.Context) ([]models.Rarity, error) {
	var rarities []models.Rarity
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rarities).Error
	if err != nil {
		configslog.Log.Error("LookupRepository.GetAllRarities: DB error", zap.Error(err))
		return nil, err
	}
	return rarities, nil
}

// GetAllTypes tüm tipleri ada göre sıralı listeler.
func (r *LookupRepository) GetAllTypes(ctx context.Context) ([]models.Type, error) {
	var types []models.Type
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	if err != nil {
		configslog.Log.Error("LookupRepository.GetAllTypes: DB error", zap.Error(err))
		return nil, err
	}
	return types, nil
}

// Arayüz uyumluluğu kontrolü
var _ ILookupRepository = (*LookupRepository)(nil)
