// Package portal holds the client self-service handlers. Every handler resolves the
// caller's client record through their profile; staff/admin flows live in the parent
// controllers package.
package portal

import (
	"fmt"
	"log"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/db"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/scheduling"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// currentProfile loads the caller's profile document.
func currentProfile(c *fiber.Ctx) (*models.ClientProfile, error) {
	userID := c.Locals("userID").(uint)
	var profile models.ClientProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ensureClientRecord returns the caller's client record, creating one from the
// profile on first booking if signup never linked one.
func ensureClientRecord(tx *gorm.DB, profile *models.ClientProfile, email string) (*models.Client, error) {
	if profile.ClientID != nil {
		var client models.Client
		if err := tx.First(&client, *profile.ClientID).Error; err != nil {
			return nil, err
		}
		return &client, nil
	}

	accountID := profile.UserID
	now := time.Now()
	client := models.Client{
		FirstName:         profile.FirstName,
		LastName:          profile.LastName,
		Email:             email,
		Mobile:            profile.Mobile,
		MedicalConditions: profile.MedicalConditions,
		Medications:       profile.Medications,
		Allergies:         profile.Allergies,
		Status:            models.ClientActive,
		AccountID:         &accountID,
		LinkedAt:          &now,
	}
	if err := tx.Create(&client).Error; err != nil {
		return nil, err
	}
	clientID := client.ID
	profile.ClientID = &clientID
	if err := tx.Model(profile).Update("client_id", clientID).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// staffIsFree adapts the availability query to the slot generator's hook. A query
// failure counts as free so slot listings degrade rather than go empty; the booking
// write still re-checks inside its transaction.
func staffIsFree(staffID uint, start, end time.Time) bool {
	available, err := utils.CheckStaffAvailability(staffID, start, end)
	if err != nil {
		log.Printf("availability check failed for staff %d: %v", staffID, err)
		return true
	}
	return available
}

// GetMyAppointments returns the caller's appointments, soonest first.
func GetMyAppointments(c *fiber.Ctx) error {
	profile, err := currentProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}
	if profile.ClientID == nil {
		return c.JSON([]models.Appointment{})
	}

	var appointments []models.Appointment
	if err := db.DB.Preload("Service").Preload("Staff").Preload("Centre").
		Where("client_id = ?", *profile.ClientID).
		Order("start_time asc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	// Tell the UI which appointments may still show cancel/reschedule controls.
	now := time.Now()
	type apptView struct {
		models.Appointment
		Modifiable bool `json:"modifiable"`
	}
	views := make([]apptView, 0, len(appointments))
	for _, appt := range appointments {
		views = append(views, apptView{Appointment: appt, Modifiable: scheduling.CanModify(&appt, now)})
	}
	return c.JSON(views)
}

type bookingInput struct {
	ServiceID uint      `json:"service_id"`
	StaffID   uint      `json:"staff_id"`
	CentreID  uint      `json:"centre_id"`
	StartTime time.Time `json:"start_time"`
	Notes     string    `json:"notes"`
}

// BookAppointment creates a new appointment for the caller.
func BookAppointment(c *fiber.Ctx) error {
	profile, err := currentProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Complete your profile before booking",
			Error:   err.Error(),
		})
	}

	input := new(bookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	fields := map[string]string{}
	if input.ServiceID == 0 {
		fields["service_id"] = "required"
	}
	if input.StaffID == 0 {
		fields["staff_id"] = "required"
	}
	if input.StartTime.IsZero() {
		fields["start_time"] = "required"
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Validation failed",
			Fields:  fields,
		})
	}

	var service models.Service
	if err := db.DB.Preload("Centres").First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	// The service must actually be offered at the chosen centre.
	offered := false
	for _, centre := range service.Centres {
		if centre.ID == input.CentreID {
			offered = true
			break
		}
	}
	if !offered {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This service is not offered at the chosen centre",
		})
	}

	var user models.User
	if err := db.DB.First(&user, profile.UserID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Account not found",
			Error:   err.Error(),
		})
	}

	status := models.StatusScheduled
	if !service.RequiresApproval {
		status = models.StatusConfirmed
	}

	var appointment models.Appointment
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		client, err := ensureClientRecord(tx, profile, user.Email)
		if err != nil {
			return err
		}

		start := input.StartTime
		end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)
		available, err := utils.CheckStaffAvailability(input.StaffID, start, end)
		if err != nil {
			return err
		}
		if !available {
			return fmt.Errorf("time slot not available")
		}

		appointment = models.Appointment{
			ClientID:        client.ID,
			StaffID:         input.StaffID,
			CentreID:        input.CentreID,
			ServiceID:       service.ID,
			StartTime:       start,
			DurationMinutes: service.DurationMinutes,
			PriceCents:      service.PriceCents,
			Status:          status,
			Notes:           input.Notes,
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available or failed to create appointment",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// ownAppointment loads an appointment and confirms it belongs to the caller.
func ownAppointment(c *fiber.Ctx) (*models.Appointment, *models.ClientProfile, error) {
	profile, err := currentProfile(c)
	if err != nil {
		return nil, nil, fmt.Errorf("profile not found")
	}
	if profile.ClientID == nil {
		return nil, nil, fmt.Errorf("no client record for this account")
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Staff").Preload("Service").
		First(&appointment, c.Params("id")).Error; err != nil {
		return nil, nil, fmt.Errorf("appointment not found")
	}
	if appointment.ClientID != *profile.ClientID {
		return nil, nil, fmt.Errorf("appointment not found")
	}
	return &appointment, profile, nil
}

// GetRescheduleSlots lists candidate replacement slots for one of the caller's
// appointments on a chosen date.
func GetRescheduleSlots(c *fiber.Ctx) error {
	appointment, _, err := ownAppointment(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	now := time.Now()
	if !scheduling.CanModify(appointment, now) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This appointment can no longer be rescheduled",
		})
	}

	dateStr := c.Query("date")
	day, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, use YYYY-MM-DD",
		})
	}

	slots := scheduling.ReplacementSlots(day, appointment, now, staffIsFree)
	return c.JSON(fiber.Map{
		"appointment_id": appointment.ID,
		"date":           dateStr,
		"slots":          slots,
	})
}

type rescheduleInput struct {
	Date   string `json:"date"`
	SlotID string `json:"slot_id"`
	Reason string `json:"reason"`
}

// RescheduleAppointment moves one of the caller's appointments to a chosen slot.
// The old appointment is marked rescheduled and a fresh one is created; a cancelled
// appointment is never revived.
func RescheduleAppointment(c *fiber.Ctx) error {
	appointment, _, err := ownAppointment(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	input := new(rescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// Local validation before any store write.
	fields := map[string]string{}
	if input.SlotID == "" {
		fields["slot_id"] = "choose a new time slot"
	}
	if input.Reason == "" {
		fields["reason"] = "a reason is required"
	}
	if input.Date == "" {
		fields["date"] = "required"
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Validation failed",
			Fields:  fields,
		})
	}

	now := time.Now()
	if !scheduling.CanModify(appointment, now) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This appointment can no longer be rescheduled",
		})
	}

	day, err := time.ParseInLocation("2006-01-02", input.Date, now.Location())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, use YYYY-MM-DD",
		})
	}

	// Resolve the chosen slot against a fresh generation for the same inputs.
	var chosen *scheduling.Slot
	for _, slot := range scheduling.ReplacementSlots(day, appointment, now, staffIsFree) {
		if slot.ID == input.SlotID {
			s := slot
			chosen = &s
			break
		}
	}
	if chosen == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown slot for that date",
			Fields:  map[string]string{"slot_id": "not a valid slot"},
		})
	}
	if !chosen.Available {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "That slot is no longer available",
		})
	}

	var replacement models.Appointment
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		available, err := utils.CheckStaffAvailability(appointment.StaffID, chosen.StartTime, chosen.EndTime)
		if err != nil {
			return err
		}
		if !available {
			return fmt.Errorf("time slot not available")
		}

		replacement = models.Appointment{
			ClientID:        appointment.ClientID,
			StaffID:         appointment.StaffID,
			CentreID:        appointment.CentreID,
			ServiceID:       appointment.ServiceID,
			StartTime:       chosen.StartTime,
			DurationMinutes: appointment.DurationMinutes,
			PriceCents:      appointment.PriceCents,
			Status:          models.StatusScheduled,
			Notes:           appointment.Notes,
		}
		if err := tx.Create(&replacement).Error; err != nil {
			return err
		}

		appointment.CancelReason = input.Reason
		appointment.RescheduledToID = &replacement.ID
		return appointment.UpdateStatus(tx, models.StatusRescheduled)
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to reschedule appointment",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"previous":    appointment,
		"appointment": replacement,
	})
}

type cancelInput struct {
	Reason string `json:"reason"`
}

// CancelAppointment cancels one of the caller's appointments inside the allowed
// window.
func CancelAppointment(c *fiber.Ctx) error {
	appointment, _, err := ownAppointment(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	input := new(cancelInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Validation failed",
			Fields:  map[string]string{"reason": "a reason is required"},
		})
	}

	if !scheduling.CanModify(appointment, time.Now()) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This appointment can no longer be cancelled",
		})
	}

	appointment.CancelReason = input.Reason
	if err := appointment.UpdateStatus(db.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}
