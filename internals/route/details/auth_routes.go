package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "modulus_backend/internals/features/users/auth/controller"
	"modulus_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	authGroup.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	authGroup.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	authGroup.Post("/logout", ctrl.Logout)
	authGroup.Post("/refresh-token", ctrl.RefreshToken)
}
