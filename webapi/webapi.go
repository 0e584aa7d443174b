// Package webapi provides the HTTP surface of the service.
// It is organized into sub-packages:
// - common: rendering of results and problem details
// - note: note endpoints
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/yander/pkg/app"
	"github.com/amirasaad/yander/pkg/transport"
	"github.com/amirasaad/yander/webapi/common"
	noteweb "github.com/amirasaad/yander/webapi/note"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.HTTPError(c, fe)
			}
			app.Deps.Logger.Error("Unhandled error", "path", c.Path(), "error", err)
			return common.Render(c, transport.ServerError(transport.MsgUnexpected))
		},
	})

	if rl := app.Config.RateLimit; rl != nil && rl.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:        rl.MaxRequests,
			Expiration: rl.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				// Behind a proxy the first X-Forwarded-For hop is the client.
				if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
					if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
						return strings.TrimSpace(forwardedFor[:commaIndex])
					}
					return strings.TrimSpace(forwardedFor)
				}
				if realIP := c.Get("X-Real-IP"); realIP != "" {
					return realIP
				}
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return common.HTTPError(c, fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded"))
			},
		}))
	}
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Yander API is running! 🚀")
	})

	noteweb.Routes(fiberApp, app.Deps.Notes, app.Config)
	return fiberApp
}
