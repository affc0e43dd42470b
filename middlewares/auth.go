// middlewares/auth.go
package middlewares

import (
	"strings"

	"kartotek.link/models"
	"kartotek.link/services"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware Authorization başlığındaki Bearer token'ı doğrular,
// kullanıcıyı yükler ve c.Locals("user") içine koyar.
// Başlık eksik, token geçersiz/süresi dolmuş veya kullanıcı yoksa
// WWW-Authenticate challenge başlığıyla 401 döner.
func AuthMiddleware(c *fiber.Ctx) error {
	authService := services.NewAuthService()

	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if header == "" || !strings.HasPrefix(header, prefix) {
		return unauthorized(c)
	}
	tokenString := strings.TrimPrefix(header, prefix)

	user, err := authService.GetUserFromToken(c.UserContext(), tokenString)
	if err != nil {
		return unauthorized(c)
	}

	c.Locals("user", user)
	return c.Next()
}

// ActiveUserMiddleware hesabın aktif olduğunu doğrular.
// AuthMiddleware'den sonra çalışmalıdır; pasif hesaplar 400 alır.
func ActiveUserMiddleware(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || user == nil {
		return unauthorized(c)
	}
	if !user.IsActive {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": services.ErrInactiveUser.Error(),
		})
	}
	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": services.ErrUnauthorized.Error(),
	})
}
