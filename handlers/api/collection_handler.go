// handlers/api/collection_handler.go
package handlers

import (
	"errors"

	"kartotek.link/configs/configslog"
	"kartotek.link/models"
	"kartotek.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CollectionHandler kullanıcının kart koleksiyonu uç noktaları için handler.
// Tüm rotalar AuthMiddleware + ActiveUserMiddleware arkasındadır.
type CollectionHandler struct {
	service services.ICollectionService
}

// NewCollectionHandler yeni bir CollectionHandler örneği oluşturur.
func NewCollectionHandler() *CollectionHandler {
	return &CollectionHandler{service: services.NewCollectionService()}
}

// currentUser middleware'in koyduğu kullanıcıyı döndürür.
func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok && user != nil
}

// ListCollection GET /collection/cards: kullanıcının (adet, kart) çiftlerini döndürür.
func (h *CollectionHandler) ListCollection(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": services.ErrUnauthorized.Error()})
	}

	entries, err := h.service.GetCollection(c.UserContext(), user.ID)
	if err != nil {
		configslog.Log.Error("ListCollection: servis hatası", zap.Uint("user_id", user.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "koleksiyon listelenirken bir hata oluştu"})
	}

	return c.JSON(entries)
}

// AddCard POST /collection/cards/:tcg_id: kartı ekler veya adedini artırır.
func (h *CollectionHandler) AddCard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": services.ErrUnauthorized.Error()})
	}
	tcgID := c.Params("tcg_id")

	message, err := h.service.AddCard(c.UserContext(), user.ID, tcgID)
	if err != nil {
		if errors.Is(err, services.ErrColCardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrColCardNotFound.Error()})
		}
		configslog.Log.Error("AddCard: servis hatası",
			zap.Uint("user_id", user.ID), zap.String("tcg_id", tcgID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "kart koleksiyona eklenirken bir hata oluştu"})
	}

	return c.JSON(fiber.Map{"detail": message})
}

// RemoveCard DELETE /collection/cards/:tcg_id: adedi azaltır veya satırı siler.
func (h *CollectionHandler) RemoveCard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": services.ErrUnauthorized.Error()})
	}
	tcgID := c.Params("tcg_id")

	message, err := h.service.RemoveCard(c.UserContext(), user.ID, tcgID)
	if err != nil {
		if errors.Is(err, services.ErrColCardNotFound) || errors.Is(err, services.ErrEntryNotInCollection) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("RemoveCard: servis hatası",
			zap.Uint("user_id", user.ID), zap.String("tcg_id", tcgID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "kart koleksiyondan çıkarılırken bir hata oluştu"})
	}

	return c.JSON(fiber.Map{"detail": message})
}
