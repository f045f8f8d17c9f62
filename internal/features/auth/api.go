package auth

import (
	"go-dashboard/internal/config"
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	controller *AuthController
	config     *config.Config
}

func NewAuthApi(controller *AuthController, config *config.Config) *AuthApi {
	return &AuthApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers all auth-related routes
func (h *AuthApi) Setup(app *fiber.App) {
	// Public routes
	app.Post("/api/register", h.controller.Register)
	app.Post("/api/login", h.controller.Login)

	app.Post("/api/logout", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.Logout)
}
