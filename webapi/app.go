package webapi

import (
	"github.com/amirasaad/moneykit/infra/initializer"
	"github.com/amirasaad/moneykit/webapi/common"
	"github.com/amirasaad/moneykit/webapi/currency"
	"github.com/amirasaad/moneykit/webapi/money"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// NewApp builds the Fiber app with all routes and middleware.
func NewApp(deps *initializer.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default to 500 if status code cannot be determined
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			deps.Logger.Error("Request failed",
				"path", c.Path(),
				"status", status,
				"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
				"error", err,
			)
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	rateLimit := deps.Config.RateLimit
	app.Use(limiter.New(limiter.Config{
		Max:        rateLimit.MaxRequests,
		Expiration: rateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	money.Routes(app, deps)
	currency.Routes(app, deps)

	return app
}
