package routes

import (
	"github.com/VeloF2025/Life-Arrow-V1-sub003/controllers"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupCatalogueRoutes wires services and treatment centres. Reads are open so
// the booking UI can browse without a session.
func SetupCatalogueRoutes(app *fiber.App) {
	services := app.Group("/api/v1/services")
	services.Get("/", controllers.GetAllServices)
	services.Get("/:id", controllers.GetService)
	services.Post("/", middleware.Protected(), middleware.RequirePermission("services", "create"), controllers.CreateService)
	services.Put("/:id", middleware.Protected(), middleware.RequirePermission("services", "update"), controllers.UpdateService)
	services.Put("/:id/centres", middleware.Protected(), middleware.RequirePermission("services", "update"), controllers.SetServiceCentres)
	services.Delete("/:id", middleware.Protected(), middleware.RequirePermission("services", "delete"), controllers.DeleteService)

	centres := app.Group("/api/v1/centres")
	centres.Get("/", controllers.GetAllCentres)
	centres.Get("/:id", controllers.GetCentre)
	centres.Post("/", middleware.Protected(), middleware.RequirePermission("centres", "create"), controllers.CreateCentre)
	centres.Put("/:id", middleware.Protected(), middleware.RequirePermission("centres", "update"), controllers.UpdateCentre)
	centres.Delete("/:id", middleware.Protected(), middleware.RequirePermission("centres", "delete"), controllers.DeleteCentre)
}
