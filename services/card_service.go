// services/card_service.go
package services

import (
	"context"
	"errors"

	"kartotek.link/configs/configslog"
	"kartotek.link/models"
	"kartotek.link/pkg/queryparams"
	"kartotek.link/repositories"

	"go.uber.org/zap"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound CardServiceError = "kart bulunamadı"
	ErrSetNotFound  CardServiceError = "set bulunamadı"
)

// ICardService kart sorgulama işlemleri için arayüz.
type ICardService interface {
	SearchCards(ctx context.Context, params queryparams.CardFilterParams) (*queryparams.PaginatedResult, error)
	GetCardByTCGID(ctx context.Context, tcgID string) (*models.Card, error)
	GetCardsBySetName(ctx context.Context, setName string) ([]models.Card, error)
	GetAllSets(ctx context.Context) ([]models.Set, error)
	GetAllRarities(ctx context.Context) ([]models.Rarity, error)
	GetAllTypes(ctx context.Context) ([]models.Type, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo       repositories.ICardRepository
	lookupRepo repositories.ILookupRepository
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	return &CardService{
		repo:       repositories.NewCardRepository(),
		lookupRepo: repositories.NewLookupRepository(),
	}
}

// NewCardServiceWithRepos bağımlılıkları dışarıdan alan constructor (testler için).
func NewCardServiceWithRepos(repo repositories.ICardRepository, lookupRepo repositories.ILookupRepository) ICardService {
	return &CardService{repo: repo, lookupRepo: lookupRepo}
}

// SearchCards filtreli ve sayfalı kart araması yapar.
// Tüm filtreler AND ile birleştirilir; sayfa sınırları burada normalize edilir.
func (s *CardService) SearchCards(ctx context.Context, params queryparams.CardFilterParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	cards, totalCount, err := s.repo.SearchCards(ctx, params)
	if err != nil {
		configslog.Log.Error("Kart araması başarısız", zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			Page:       params.Page,
			PerPage:    params.PerPage,
			TotalItems: totalCount,
			TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// GetCardByTCGID kartın tüm detaylarını dış kimliği ile getirir.
func (s *CardService) GetCardByTCGID(ctx context.Context, tcgID string) (*models.Card, error) {
	card, err := s.repo.FindByTCGID(ctx, tcgID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardByTCGID: Repo error", zap.String("tcg_id", tcgID), zap.Error(err))
		return nil, err
	}
	return card, nil
}

// GetCardsBySetName tam set adıyla setin tüm kartlarını getirir.
// Set mevcut değilse ErrSetNotFound döner (boş set ile karışmaması için
// önce setin varlığı kontrol edilir).
func (s *CardService) GetCardsBySetName(ctx context.Context, setName string) ([]models.Card, error) {
	set, err := s.lookupRepo.FindSetByName(ctx, setName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSetNotFound
		}
		configslog.Log.Error("GetCardsBySetName: set sorgusu başarısız", zap.String("set_name", setName), zap.Error(err))
		return nil, err
	}

	cards, err := s.repo.FindAllBySetID(ctx, set.ID)
	if err != nil {
		configslog.Log.Error("GetCardsBySetName: kart listesi alınamadı", zap.Uint("set_id", set.ID), zap.Error(err))
		return nil, err
	}
	return cards, nil
}

// GetAllSets filtre seçenekleri için set adlarını listeler.
func (s *CardService) GetAllSets(ctx context.Context) ([]models.Set, error) {
	return s.lookupRepo.GetAllSets(ctx)
}

// GetAllRarities filtre seçenekleri için nadirlik adlarını listeler.
func (s *CardService) GetAllRarities(ctx context.Context) ([]models.Rarity, error) {
	return s.lookupRepo.GetAllRarities(ctx)
}

// GetAllTypes filtre seçenekleri için tip adlarını listeler.
func (s *CardService) GetAllTypes(ctx context.Context) ([]models.Type, error) {
	return s.lookupRepo.GetAllTypes(ctx)
}

var _ ICardService = (*CardService)(nil)
