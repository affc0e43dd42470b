package main

import (
	"os"
	"os/signal"
	"syscall"

	"kartotek.link/configs/configsdatabase"
	"kartotek.link/configs/configslog"
	"kartotek.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

// newApp fiber uygulamasını üretim konfigürasyonu ile kurar.
// UnescapePath açık olmalıdır; rota parametreleri ("Base%20Set" gibi)
// handler'lara çözülmüş halde ulaşır.
func newApp() *fiber.App {
	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName:      "Kartotek API",
		Views:        engine,
		UnescapePath: true,
	})

	routes.SetupRoutes(app)
	return app
}

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := newApp()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde sunucu kapatılır,
	// defer'lenen veritabanı kapanışı çalışır.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		_ = app.Shutdown()
	}()

	configslog.SLog.Infof("Kartotek API %s portunda dinliyor...", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
