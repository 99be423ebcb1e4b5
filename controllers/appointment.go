package controllers

import (
	"fmt"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/db"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllAppointments returns appointments for the back office, optionally filtered
// by centre, staff and status.
func GetAllAppointments(c *fiber.Ctx) error {
	query := db.DB.Preload("Service").Preload("Staff").Preload("Client").Preload("Centre")

	if centreID := c.QueryInt("centre_id"); centreID > 0 {
		query = query.Where("centre_id = ?", centreID)
	}
	if staffID := c.QueryInt("staff_id"); staffID > 0 {
		query = query.Where("staff_id = ?", staffID)
	}
	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(models.AppointmentStatus(status)) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Unknown status filter",
				Error:   status,
			})
		}
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("start_time asc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointmentCalendar returns appointments in a date range for calendar views.
// Defaults to the current week.
func GetAppointmentCalendar(c *fiber.Ctx) error {
	now := time.Now()
	from := now.AddDate(0, 0, -int(now.Weekday()))
	to := from.AddDate(0, 0, 7)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid from date, use YYYY-MM-DD",
			})
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid to date, use YYYY-MM-DD",
			})
		}
		to = parsed.AddDate(0, 0, 1)
	}

	query := db.DB.Preload("Service").Preload("Staff").Preload("Client").
		Where("start_time >= ? AND start_time < ?", from, to)
	if centreID := c.QueryInt("centre_id"); centreID > 0 {
		query = query.Where("centre_id = ?", centreID)
	}

	var appointments []models.Appointment
	if err := query.Order("start_time asc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch calendar",
			Error:   err.Error(),
		})
	}

	// Group by calendar day for the week/day views.
	days := make(map[string][]models.Appointment)
	for _, appt := range appointments {
		key := appt.StartTime.Format("2006-01-02")
		days[key] = append(days[key], appt)
	}
	return c.JSON(fiber.Map{
		"from": from.Format("2006-01-02"),
		"to":   to.AddDate(0, 0, -1).Format("2006-01-02"),
		"days": days,
	})
}

// GetAppointment returns one appointment by ID
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Service").Preload("Staff").Preload("Client").Preload("Centre").
		First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment books an appointment on behalf of a client (front desk flow).
func CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.First(&service, appointment.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	// Duration and price always come from the catalogue.
	appointment.DurationMinutes = service.DurationMinutes
	appointment.PriceCents = service.PriceCents
	appointment.EndTime = appointment.StartTime.Add(appointment.Duration())

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		available, err := utils.CheckStaffAvailability(appointment.StaffID, appointment.StartTime, appointment.EndTime)
		if err != nil {
			return err
		}
		if !available {
			return fmt.Errorf("time slot not available")
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available or failed to create appointment",
			Error:   err.Error(),
		})
	}

	sendAppointmentMail(&appointment, "Appointment Confirmation",
		"Your appointment has been booked.")

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointmentStatus applies a status transition (confirm, complete, no_show,
// cancel) from the back office.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var input struct {
		Status models.AppointmentStatus `json:"status"`
		Reason string                   `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if !models.ValidStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown status",
			Error:   string(input.Status),
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Client").Preload("Service").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if input.Status == models.StatusCancelled {
		appointment.CancelReason = input.Reason
	}
	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Status change not allowed",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointment)
}

// DeleteAppointment removes the whole record. Admin-only; status changes are the
// normal way to take an appointment off the schedule.
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// sendAppointmentMail mails the client about a booking event. Mail failures are
// logged upstream by SendEmail's caller; a missed mail never fails the booking.
func sendAppointmentMail(appointment *models.Appointment, subject, lead string) {
	var client models.Client
	if err := db.DB.First(&client, appointment.ClientID).Error; err != nil || client.Email == "" {
		return
	}
	var service models.Service
	db.DB.First(&service, appointment.ServiceID)
	var staff models.User
	db.DB.First(&staff, appointment.StaffID)

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>With:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The Life Arrow Team</p>
	`, client.FullName(), lead, service.Name, staff.Name,
		appointment.StartTime.Format("2006-01-02 15:04"),
		appointment.EndTime.Format("2006-01-02 15:04"),
		appointment.Status)

	if err := utils.SendEmail(client.Email, subject, body); err != nil {
		fmt.Println("Failed to send appointment mail:", err)
	}
}
