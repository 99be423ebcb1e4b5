package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "scheduled"
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusNoShow      AppointmentStatus = "no_show"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

type Appointment struct {
	gorm.Model
	ClientID        uint              `json:"client_id"`
	Client          Client            `json:"client" gorm:"foreignKey:ClientID"`
	StaffID         uint              `json:"staff_id"`
	Staff           User              `json:"staff" gorm:"foreignKey:StaffID"`
	CentreID        uint              `json:"centre_id"`
	Centre          TreatmentCentre   `json:"centre" gorm:"foreignKey:CentreID"`
	ServiceID       uint              `json:"service_id"`
	Service         Service           `json:"service" gorm:"foreignKey:ServiceID"`
	StartTime       time.Time         `json:"start_time"`
	EndTime         time.Time         `json:"end_time"`
	DurationMinutes int               `json:"duration_minutes"`
	PriceCents      int64             `json:"price_cents"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes"`
	CancelReason    string            `json:"cancel_reason,omitempty"`
	RescheduledToID *uint             `json:"rescheduled_to_id,omitempty"`
}

// Duration returns the booked length of the appointment.
func (a *Appointment) Duration() time.Duration {
	return time.Duration(a.DurationMinutes) * time.Minute
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	// end_time is derived, never trusted from the caller
	if a.DurationMinutes > 0 {
		a.EndTime = a.StartTime.Add(a.Duration())
	}
	return nil
}

// CanTransition reports whether a status change is allowed. Transitions only move
// forward; a reschedule produces a fresh scheduled appointment rather than reviving
// this one.
func CanTransition(from, to AppointmentStatus) bool {
	switch from {
	case StatusScheduled:
		return to == StatusConfirmed || to == StatusCancelled || to == StatusNoShow ||
			to == StatusCompleted || to == StatusRescheduled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled || to == StatusNoShow ||
			to == StatusRescheduled
	case StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled:
		return false
	}
	return false
}

// UpdateStatus applies a status transition and persists it.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if !CanTransition(a.Status, newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
	}
	a.Status = newStatus
	return tx.Save(a).Error
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}
