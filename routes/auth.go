package routes

import (
	"github.com/VeloF2025/Life-Arrow-V1-sub003/controllers"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")

	auth.Get("/check-email", controllers.CheckSignupEmail)
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/forgot-password", controllers.ForgotPassword)
	auth.Post("/reset-password", controllers.ResetPassword)

	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
	auth.Post("/refresh", middleware.Protected(), controllers.RefreshToken)
}
