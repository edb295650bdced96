package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/features/users/auth/controller"
	"school360_backend/internals/middlewares"
)

// Public auth routes (stricter rate limit on login)
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// Authenticated user routes
func AuthUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	api.Get("/me", ctrl.Me)
}
