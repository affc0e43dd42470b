// handlers/api/card_handler.go
package handlers

import (
	"errors"

	"kartotek.link/configs/configslog"
	"kartotek.link/pkg/queryparams"
	"kartotek.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CardHandler kart arama ve detay uç noktaları için handler.
type CardHandler struct {
	service services.ICardService
}

// NewCardHandler yeni bir CardHandler örneği oluşturur.
func NewCardHandler() *CardHandler {
	return &CardHandler{service: services.NewCardService()}
}

// SearchCards GET /cards: filtreli ve sayfalı kart listesi döndürür.
func (h *CardHandler) SearchCards(c *fiber.Ctx) error {
	var params queryparams.CardFilterParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("SearchCards: query parse hatası", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz sorgu parametreleri"})
	}
	params.Validate()

	result, err := h.service.SearchCards(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("SearchCards: servis hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "kartlar listelenirken bir hata oluştu"})
	}

	return c.JSON(fiber.Map{
		"page":        result.Meta.Page,
		"page_size":   result.Meta.PerPage,
		"total_items": result.Meta.TotalItems,
		"total_pages": result.Meta.TotalPages,
		"items":       result.Data,
	})
}

// GetCardByTCGID GET /cards/:tcg_id: tek kartın tüm detaylarını döndürür.
func (h *CardHandler) GetCardByTCGID(c *fiber.Ctx) error {
	tcgID := c.Params("tcg_id")

	card, err := h.service.GetCardByTCGID(c.UserContext(), tcgID)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrCardNotFound.Error()})
		}
		configslog.Log.Error("GetCardByTCGID: servis hatası", zap.String("tcg_id", tcgID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "kart bilgileri alınırken bir hata oluştu"})
	}

	return c.JSON(card)
}
