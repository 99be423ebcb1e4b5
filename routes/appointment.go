package routes

import (
	"github.com/VeloF2025/Life-Arrow-V1-sub003/controllers"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAppointmentRoutes(app *fiber.App) {
	appointments := app.Group("/api/v1/appointments", middleware.Protected())

	appointments.Get("/", middleware.RequirePermission("appointments", "read"), controllers.GetAllAppointments)
	appointments.Get("/calendar", middleware.RequirePermission("appointments", "read"), controllers.GetAppointmentCalendar)
	appointments.Get("/:id", middleware.RequirePermission("appointments", "read"), controllers.GetAppointment)
	appointments.Post("/", middleware.RequirePermission("appointments", "create"), controllers.CreateAppointment)
	appointments.Patch("/:id/status", middleware.RequirePermission("appointments", "update"), controllers.UpdateAppointmentStatus)
	appointments.Delete("/:id", middleware.RequireRole("admin"), controllers.DeleteAppointment)
}
