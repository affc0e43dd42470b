package routes

import (
	api_handlers "kartotek.link/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerCardRoutes kart arama/detay ve lookup listesi rotalarını tanımlar.
// Bu rotalar herkese açıktır; kimlik doğrulama gerektirmez.
func registerCardRoutes(app *fiber.App) {
	cardHandler := api_handlers.NewCardHandler()
	setHandler := api_handlers.NewSetHandler()

	app.Get("/cards", cardHandler.SearchCards)
	app.Get("/cards/:tcg_id", cardHandler.GetCardByTCGID)

	app.Get("/sets/", setHandler.ListSets)
	app.Get("/sets/:set_name/cards", setHandler.GetCardsBySet)
	app.Get("/rarities/", setHandler.ListRarities)
	app.Get("/types/", setHandler.ListTypes)
}
