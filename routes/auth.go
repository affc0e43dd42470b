package routes

import (
	api_handlers "kartotek.link/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAuthRoutes kullanıcı kaydı ve token rotalarını tanımlar.
func registerAuthRoutes(app *fiber.App) {
	authHandler := api_handlers.NewAuthHandler()

	userGroup := app.Group("/users")
	userGroup.Post("/register", authHandler.Register)
	userGroup.Post("/token", authHandler.Token)
}
