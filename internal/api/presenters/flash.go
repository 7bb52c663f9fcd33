package presenters

import (
	"time"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashCookie = "flash"
	FlashLocal  = "flash"
)

// RedirectWithFlash stores a signed one-shot message in a cookie and
// redirects. The message is shown on the next page that reads it.
func RedirectWithFlash(c *fiber.Ctx, flashes jwt.JWTService, location string, kind string, message string) error {
	token, err := flashes.GenerateTokenFlash(domain.Flash{Kind: kind, Message: message})
	if err == nil {
		c.Cookie(&fiber.Cookie{
			Name:     FlashCookie,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(jwt.FlashTTL),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return c.Redirect(location, fiber.StatusFound)
}

// Flash returns the message read by the flash middleware, if any.
func Flash(c *fiber.Ctx) *domain.Flash {
	flash, _ := c.Locals(FlashLocal).(*domain.Flash)
	return flash
}
