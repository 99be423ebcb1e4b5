package routes

import (
	"github.com/VeloF2025/Life-Arrow-V1-sub003/controllers"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupStaffRoutes(app *fiber.App) {
	staff := app.Group("/api/v1/staff", middleware.Protected())

	staff.Get("/", middleware.RequirePermission("staff", "read"), controllers.GetAllStaff)
	staff.Get("/:id", middleware.RequirePermission("staff", "read"), controllers.GetStaffMember)
	staff.Post("/", middleware.RequireRole("admin"), controllers.CreateStaffMember)
	staff.Put("/:id", middleware.RequireRole("admin"), controllers.UpdateStaffMember)
	staff.Post("/assign-role", middleware.RequireRole("admin"), controllers.AssignStaffRole)
	staff.Post("/:id/photo", middleware.RequireRole("admin"), controllers.UploadStaffPhoto)

	rbac := app.Group("/api/v1/rbac", middleware.Protected(), middleware.RequireRole("admin"))
	rbac.Get("/roles", controllers.GetRoles)
	rbac.Post("/roles", controllers.CreateRole)
	rbac.Get("/permissions", controllers.GetPermissions)
	rbac.Post("/permissions", controllers.CreatePermission)
	rbac.Post("/roles/assign-permission", controllers.AssignPermissionToRole)
}
