// handlers/api/set_handler.go
package handlers

import (
	"errors"

	"kartotek.link/configs/configslog"
	"kartotek.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetHandler set ve lookup listesi uç noktaları için handler.
type SetHandler struct {
	service services.ICardService
}

// NewSetHandler yeni bir SetHandler örneği oluşturur.
func NewSetHandler() *SetHandler {
	return &SetHandler{service: services.NewCardService()}
}

// GetCardsBySet GET /sets/:set_name/cards: setin tüm kartlarını döndürür.
func (h *SetHandler) GetCardsBySet(c *fiber.Ctx) error {
	setName := c.Params("set_name")

	cards, err := h.service.GetCardsBySetName(c.UserContext(), setName)
	if err != nil {
		if errors.Is(err, services.ErrSetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrSetNotFound.Error()})
		}
		configslog.Log.Error("GetCardsBySet: servis hatası", zap.String("set_name", setName), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "set kartları alınırken bir hata oluştu"})
	}

	return c.JSON(cards)
}

// ListSets GET /sets/: tüm set adlarını sıralı listeler.
func (h *SetHandler) ListSets(c *fiber.Ctx) error {
	sets, err := h.service.GetAllSets(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListSets: servis hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "setler listelenirken bir hata oluştu"})
	}
	return c.JSON(sets)
}

// ListRarities GET /rarities/: tüm nadirlik adlarını sıralı listeler.
func (h *SetHandler) ListRarities(c *fiber.Ctx) error {
	rarities, err := h.service.GetAllRarities(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListRarities: servis hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "nadirlikler listelenirken bir hata oluştu"})
	}
	return c.JSON(rarities)
}

// ListTypes GET /types/: tüm tip adlarını sıralı listeler.
func (h *SetHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.service.GetAllTypes(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListTypes: servis hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "tipler listelenirken bir hata oluştu"})
	}
	return c.JSON(types)
}
