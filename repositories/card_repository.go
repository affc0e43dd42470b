// repositories/card_repository.go
package repositories

import (
	"context"
	"errors"

	"kartotek.link/configs/configsdatabase"
	"kartotek.link/configs/configslog"
	"kartotek.link/models"
	"kartotek.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository kart veritabanı işlemleri için arayüz.
type ICardRepository interface {
	SearchCards(ctx context.Context, params queryparams.CardFilterParams) ([]models.Card, int64, error)
	FindByTCGID(ctx context.Context, tcgID string) (*models.Card, error)
	FindAllBySetID(ctx context.Context, setID uint) ([]models.Card, error)
	FindIDByTCGID(ctx context.Context, tcgID string) (*models.Card, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository() ICardRepository {
	return &CardRepository{db: configsdatabase.GetDB()}
}

// NewCardRepositoryTx transaction'a bağlı bir CardRepository oluşturur.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	return &CardRepository{db: tx}
}

// cardFilter tanınan bir filtreyi sorguya uygulayan predicate fonksiyonudur.
// String birleştirme ile dinamik SQL kurmak yerine her filtre açıkça
// parametreli bir predicate olarak tanımlanır.
type cardFilter func(query *gorm.DB) *gorm.DB

// buildCardFilters parametrelerde mevcut olan filtreler için predicate listesi üretir.
func buildCardFilters(params queryparams.CardFilterParams) []cardFilter {
	var filters []cardFilter

	if params.AttackName != "" {
		// Kartın EN AZ BİR saldırısı eşleşiyorsa kart listeye girer.
		pattern := "%" + params.AttackName + "%"
		filters = append(filters, func(q *gorm.DB) *gorm.DB {
			return q.Joins("JOIN attacks ON attacks.card_id = cards.id").
				Where("LOWER(attacks.name) LIKE LOWER(?)", pattern)
		})
	}
	if params.NumberInSet != "" {
		numberInSet := params.NumberInSet
		filters = append(filters, func(q *gorm.DB) *gorm.DB {
			return q.Where("cards.number_in_set = ?", numberInSet)
		})
	}
	if params.Name != "" {
		pattern := "%" + params.Name + "%"
		filters = append(filters, func(q *gorm.DB) *gorm.DB {
			return q.Where("LOWER(cards.name) LIKE LOWER(?)", pattern)
		})
	}
	if params.Supertype != "" {
		supertype := params.Supertype
		filters = append(filters, func(q *gorm.DB) *gorm.DB {
			return q.Where("cards.supertype = ?", supertype)
		})
	}
	if params.Type != "" {
		typeName := params.Type
		filters = append(filters, func(q *gorm.DB) *gorm.DB {
			return q.Joins("JOIN card_types ON card_types.card_id = cards.id").
				Joins("JOIN types ON types.id = card_types.type_id").
				Where("types.name = ?", typeName)
		})
	}
	if params.Subtype != "" {
		subtypeName := params.Subtype
		filters = append(filters, func(q *gorm.DB) *gorm.DB {
			return q.Joins("JOIN card_subtypes ON card_subtypes.card_id = cards.id").
				Joins("JOIN subtypes ON subtypes.id = card_subtypes.subtype_id").
				Where("subtypes.name = ?", subtypeName)
		})
	}
	if params.Rarity != "" {
		rarityName := params.Rarity
		filters = append(filters, func(q *gorm.DB) *gorm.DB {
			return q.Joins("JOIN rarities ON rarities.id = cards.rarity_id").
				Where("rarities.name = ?", rarityName)
		})
	}
	if params.SetName != "" {
		setName := params.SetName
		filters = append(filters, func(q *gorm.DB) *gorm.DB {
			return q.Joins("JOIN sets ON sets.id = cards.set_id").
				Where("sets.name = ?", setName)
		})
	}
	if params.HPGte != nil {
		hpGte := *params.HPGte
		filters = append(filters, func(q *gorm.DB) *gorm.DB {
			return q.Where("cards.hp >= ?", hpGte)
		})
	}
	if params.HPLt != nil {
		hpLt := *params.HPLt
		filters = append(filters, func(q *gorm.DB) *gorm.DB {
			return q.Where("cards.hp < ?", hpLt)
		})
	}

	return filters
}

// SearchCards filtreleri uygulayıp kartları sayfalayarak listeler.
// JOIN'lerin yarattığı çoğalmayı önlemek için sayım DISTINCT cards.id
// üzerinden yapılır; sıralama deterministik olması için cards.id ASC'dir.
func (r *CardRepository) SearchCards(ctx context.Context, params queryparams.CardFilterParams) ([]models.Card, int64, error) {
	var results []models.Card
	var totalCount int64

	filters := buildCardFilters(params)
	filteredQuery := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Card{})
		for _, filter := range filters {
			q = filter(q)
		}
		return q
	}

	if err := filteredQuery().Distinct("cards.id").Count(&totalCount).Error; err != nil {
		configslog.Log.Error("SearchCards: sayım hatası", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	err := filteredQuery().
		Distinct("cards.*").
		Order("cards.id ASC").
		Offset(params.CalculateOffset()).
		Limit(params.PerPage).
		Preload("Set").
		Preload("Rarity").
		Find(&results).Error
	if err != nil {
		configslog.Log.Error("SearchCards: listeleme hatası", zap.Error(err))
		return nil, 0, err
	}

	return results, totalCount, nil
}

// FindByTCGID kartı dış kimliği ile tüm ilişkileriyle birlikte getirir.
func (r *CardRepository) FindByTCGID(ctx context.Context, tcgID string) (*models.Card, error) {
	if tcgID == "" {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.db.WithContext(ctx).
		Preload("Set").
		Preload("Rarity").
		Preload("Artist").
		Preload("Types").
		Preload("Subtypes").
		Preload("Attacks").
		Preload("Abilities").
		Preload("Rules").
		Where("tcg_id = ?", tcgID).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindByTCGID: DB error", zap.String("tcg_id", tcgID), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindIDByTCGID ilişkileri yüklemeden kartın ana kaydını getirir.
// Koleksiyon işlemleri gibi sadece iç ID ve isme ihtiyaç duyan yerler için.
func (r *CardRepository) FindIDByTCGID(ctx context.Context, tcgID string) (*models.Card, error) {
	if tcgID == "" {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.db.WithContext(ctx).Where("tcg_id = ?", tcgID).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindIDByTCGID: DB error", zap.String("tcg_id", tcgID), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindAllBySetID bir sete ait tüm kartları ID sırasıyla getirir.
func (r *CardRepository) FindAllBySetID(ctx context.Context, setID uint) ([]models.Card, error) {
	if setID == 0 {
		return nil, errors.New("geçersiz Set ID")
	}
	var cards []models.Card
	err := r.db.WithContext(ctx).
		Preload("Set").
		Preload("Rarity").
		Where("set_id = ?", setID).
		Order("id ASC").
		Find(&cards).Error
	if err != nil {
		configslog.Log.Error("CardRepository.FindAllBySetID: DB error", zap.Uint("set_id", setID), zap.Error(err))
		return nil, err
	}
	return cards, nil
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*CardRepository)(nil)
