package routes

import (
	"github.com/VeloF2025/Life-Arrow-V1-sub003/controllers/portal"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupPortalRoutes wires the client self-service surface. Everything here acts
// on the caller's own records only.
func SetupPortalRoutes(app *fiber.App) {
	p := app.Group("/api/v1/portal", middleware.Protected())

	p.Get("/appointments", portal.GetMyAppointments)
	p.Post("/appointments", portal.BookAppointment)
	p.Post("/appointments/:id/cancel", portal.CancelAppointment)
	p.Get("/appointments/:id/slots", portal.GetRescheduleSlots)
	p.Post("/appointments/:id/reschedule", portal.RescheduleAppointment)

	p.Get("/profile", portal.GetMyProfile)
	p.Put("/profile", portal.UpdateMyProfile)
	p.Post("/profile/onboarding", portal.CompleteOnboarding)
	p.Post("/profile/photo", portal.UploadMyPhoto)
}
