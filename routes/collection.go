package routes

import (
	api_handlers "kartotek.link/handlers/api"
	"kartotek.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerCollectionRoutes /collection altındaki rotaları tanımlar.
// Tüm rotalar doğrulanmış ve aktif bir kullanıcı gerektirir.
func registerCollectionRoutes(app *fiber.App) {
	collectionHandler := api_handlers.NewCollectionHandler()

	collectionGroup := app.Group("/collection")
	collectionGroup.Use(
		middlewares.AuthMiddleware,       // 1. Token geçerli mi?
		middlewares.ActiveUserMiddleware, // 2. Hesap aktif mi?
	)

	collectionGroup.Get("/cards", collectionHandler.ListCollection)
	collectionGroup.Post("/cards/:tcg_id", collectionHandler.AddCard)
	collectionGroup.Delete("/cards/:tcg_id", collectionHandler.RemoveCard)
}
