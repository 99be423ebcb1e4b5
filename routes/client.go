package routes

import (
	"github.com/VeloF2025/Life-Arrow-V1-sub003/controllers"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupClientRoutes(app *fiber.App) {
	clients := app.Group("/api/v1/clients", middleware.Protected())

	clients.Get("/", middleware.RequirePermission("clients", "read"), controllers.GetAllClients)
	clients.Get("/:id", middleware.RequirePermission("clients", "read"), controllers.GetClient)
	clients.Post("/", middleware.RequirePermission("clients", "create"), controllers.CreateClient)
	clients.Post("/import", middleware.RequirePermission("clients", "create"), controllers.ImportClients)
	clients.Put("/:id", middleware.RequirePermission("clients", "update"), controllers.UpdateClient)
	clients.Delete("/:id", middleware.RequirePermission("clients", "delete"), controllers.DeleteClient)
}
