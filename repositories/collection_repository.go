// repositories/collection_repository.go
package repositories

import (
	"context"
	"errors"

	"kartotek.link/configs/configsdatabase"
	"kartotek.link/configs/configslog"
	"kartotek.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ICollectionRepository kullanıcı koleksiyonu veritabanı işlemleri için arayüz.
type ICollectionRepository interface {
	FindAllByUserID(ctx context.Context, userID uint) ([]models.UserCollection, error)
	FindByUserAndCard(ctx context.Context, userID, cardID uint) (*models.UserCollection, error)
	FindByUserAndCardForUpdate(ctx context.Context, userID, cardID uint) (*models.UserCollection, error)
	Create(ctx context.Context, entry *models.UserCollection) error
	UpdateQuantity(ctx context.Context, userID, cardID uint, quantity int) error
	Delete(ctx context.Context, userID, cardID uint) error
}

// CollectionRepository ICollectionRepository arayüzünü uygular.
type CollectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository yeni bir CollectionRepository örneği oluşturur.
func NewCollectionRepository() ICollectionRepository {
	return &CollectionRepository{db: configsdatabase.GetDB()}
}

// NewCollectionRepositoryTx transaction'a bağlı bir CollectionRepository oluşturur.
func NewCollectionRepositoryTx(tx *gorm.DB) ICollectionRepository {
	return &CollectionRepository{db: tx}
}

// FindAllByUserID kullanıcının tüm koleksiyon satırlarını kart bilgisiyle getirir.
func (r *CollectionRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.UserCollection, error) {
	if userID == 0 {
		return nil, errors.New("geçersiz User ID")
	}
	var entries []models.UserCollection
	err := r.db.WithContext(ctx).
		Preload("Card").
		Preload("Card.Set").
		Preload("Card.Rarity").
		Where("user_id = ?", userID).
		Order("card_id ASC").
		Find(&entries).Error
	if err != nil {
		configslog.Log.Error("CollectionRepository.FindAllByUserID: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// FindByUserAndCard (user, card) çifti için koleksiyon satırını getirir.
func (r *CollectionRepository) FindByUserAndCard(ctx context.Context, userID, cardID uint) (*models.UserCollection, error) {
	return r.findByUserAndCard(ctx, userID, cardID, false)
}

// FindByUserAndCardForUpdate satırı FOR UPDATE kilidiyle getirir.
// Eşzamanlı artır/azalt çağrılarında kayıp güncellemeyi önlemek için
// transaction içinden çağrılmalıdır.
func (r *CollectionRepository) FindByUserAndCardForUpdate(ctx context.Context, userID, cardID uint) (*models.UserCollection, error) {
	return r.findByUserAndCard(ctx, userID, cardID, true)
}

func (r *CollectionRepository) findByUserAndCard(ctx context.Context, userID, cardID uint, lock bool) (*models.UserCollection, error) {
	if userID == 0 || cardID == 0 {
		return nil, errors.New("geçersiz User ID veya Card ID")
	}
	query := r.db.WithContext(ctx)
	// FOR UPDATE sqlite tarafından desteklenmez; tek yazarlı test
	// ortamında kilide gerek yoktur.
	if lock && r.db.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var entry models.UserCollection
	err := query.Where("user_id = ? AND card_id = ?", userID, cardID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CollectionRepository.findByUserAndCard: DB error",
			zap.Uint("user_id", userID), zap.Uint("card_id", cardID), zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

// Create yeni koleksiyon satırı ekler (quantity >= 1 olmalı).
func (r *CollectionRepository) Create(ctx context.Context, entry *models.UserCollection) error {
	if entry == nil {
		return errors.New("oluşturulacak koleksiyon satırı nil olamaz")
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// UpdateQuantity mevcut satırın adedini günceller.
func (r *CollectionRepository) UpdateQuantity(ctx context.Context, userID, cardID uint, quantity int) error {
	result := r.db.WithContext(ctx).Model(&models.UserCollection{}).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete koleksiyon satırını tamamen siler.
func (r *CollectionRepository) Delete(ctx context.Context, userID, cardID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Delete(&models.UserCollection{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Arayüz uyumluluğu kontrolü
var _ ICollectionRepository = (*CollectionRepository)(nil)
