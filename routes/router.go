package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama

	// --- Statik Görseller ---
	// Kart görselleri ingest kaynağındaki dizin yapısını aynen yansıtır.
	if imageDir := os.Getenv("IMAGE_DATA_DIR"); imageDir != "" {
		app.Static("/images", imageDir)
	}

	// --- Karşılama Sayfası ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": "Kartotek API",
		})
	})

	// --- Rota Grupları ---
	registerCardRoutes(app)       // /cards ve lookup listeleri
	registerAuthRoutes(app)       // /users rotaları
	registerCollectionRoutes(app) // /collection rotaları (auth gerekli)

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "kaynak bulunamadı"})
}
