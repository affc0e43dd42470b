// services/collection_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"kartotek.link/configs/configsdatabase"
	"kartotek.link/configs/configslog"
	"kartotek.link/models"
	"kartotek.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CollectionServiceError özel servis hataları
type CollectionServiceError string

func (e CollectionServiceError) Error() string { return string(e) }

const (
	ErrColCardNotFound      CollectionServiceError = "kart bulunamadı"
	ErrEntryNotInCollection CollectionServiceError = "kart koleksiyonda bulunamadı"
)

// ICollectionService kullanıcı koleksiyonu işlemleri için arayüz.
// Tüm operasyonlar yalnızca verilen kullanıcının kendi satırları üzerinde çalışır.
type ICollectionService interface {
	GetCollection(ctx context.Context, userID uint) ([]models.UserCollection, error)
	AddCard(ctx context.Context, userID uint, tcgID string) (string, error)
	RemoveCard(ctx context.Context, userID uint, tcgID string) (string, error)
}

// CollectionService ICollectionService arayüzünü uygular.
type CollectionService struct {
	repo     repositories.ICollectionRepository
	cardRepo repositories.ICardRepository
	db       *gorm.DB
}

// NewCollectionService yeni bir CollectionService örneği oluşturur.
func NewCollectionService() ICollectionService {
	return &CollectionService{
		repo:     repositories.NewCollectionRepository(),
		cardRepo: repositories.NewCardRepository(),
		db:       configsdatabase.GetDB(),
	}
}

// NewCollectionServiceWithDB bağımlılıkları verilen DB üzerinden kuran constructor (testler için).
func NewCollectionServiceWithDB(db *gorm.DB) ICollectionService {
	return &CollectionService{
		repo:     repositories.NewCollectionRepositoryTx(db),
		cardRepo: repositories.NewCardRepositoryTx(db),
		db:       db,
	}
}

// GetCollection kullanıcının koleksiyonunu (kart, adet) çiftleri olarak döndürür.
func (s *CollectionService) GetCollection(ctx context.Context, userID uint) ([]models.UserCollection, error) {
	entries, err := s.repo.FindAllByUserID(ctx, userID)
	if err != nil {
		configslog.Log.Error("Koleksiyon listelenemedi", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// AddCard kartı koleksiyona ekler veya mevcutsa adedini 1 artırır.
// Satır FOR UPDATE kilidiyle okunur ki eşzamanlı eklemeler kayıp
// güncellemeye yol açmasın; tüm işlem tek transaction içindedir.
func (s *CollectionService) AddCard(ctx context.Context, userID uint, tcgID string) (string, error) {
	card, err := s.cardRepo.FindIDByTCGID(ctx, tcgID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrColCardNotFound
		}
		return "", err
	}

	var message string
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewCollectionRepositoryTx(tx)

		entry, err := repoTx.FindByUserAndCardForUpdate(ctx, userID, card.ID)
		if err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			// Satır yok: adet 1 ile oluştur.
			newEntry := &models.UserCollection{UserID: userID, CardID: card.ID, Quantity: 1}
			if err := repoTx.Create(ctx, newEntry); err != nil {
				return err
			}
			message = fmt.Sprintf("'%s' koleksiyona eklendi.", card.Name)
			return nil
		}

		newQuantity := entry.Quantity + 1
		if err := repoTx.UpdateQuantity(ctx, userID, card.ID, newQuantity); err != nil {
			return err
		}
		message = fmt.Sprintf("'%s' için adet %d olarak güncellendi.", card.Name, newQuantity)
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("AddCard: transaction başarısız",
			zap.Uint("user_id", userID), zap.String("tcg_id", tcgID), zap.Error(txErr))
		return "", txErr
	}

	return message, nil
}

// RemoveCard kartın adedini 1 azaltır; adet 1 ise satırı tamamen siler.
// Kart katalogda yoksa veya koleksiyonda yoksa not-found hatası döner.
func (s *CollectionService) RemoveCard(ctx context.Context, userID uint, tcgID string) (string, error) {
	card, err := s.cardRepo.FindIDByTCGID(ctx, tcgID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrColCardNotFound
		}
		return "", err
	}

	var message string
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewCollectionRepositoryTx(tx)

		entry, err := repoTx.FindByUserAndCardForUpdate(ctx, userID, card.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrEntryNotInCollection
			}
			return err
		}

		if entry.Quantity > 1 {
			newQuantity := entry.Quantity - 1
			if err := repoTx.UpdateQuantity(ctx, userID, card.ID, newQuantity); err != nil {
				return err
			}
			message = fmt.Sprintf("'%s' için adet %d olarak azaltıldı.", card.Name, newQuantity)
			return nil
		}

		// Adet 1: satır silinir, adet hiçbir zaman 0 olamaz.
		if err := repoTx.Delete(ctx, userID, card.ID); err != nil {
			return err
		}
		message = fmt.Sprintf("'%s' koleksiyondan çıkarıldı.", card.Name)
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrEntryNotInCollection) {
			return "", txErr
		}
		configslog.Log.Error("RemoveCard: transaction başarısız",
			zap.Uint("user_id", userID), zap.String("tcg_id", tcgID), zap.Error(txErr))
		return "", txErr
	}

	return message, nil
}

var _ ICollectionService = (*CollectionService)(nil)
