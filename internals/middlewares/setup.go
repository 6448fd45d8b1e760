package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"modulus_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra a pilha global na ordem correta:
// recovery primeiro, depois CORS, logger e rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
