package scheduling

import (
	"fmt"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
)

// Centres operate 09:00-17:00 with bookings on the half hour.
const (
	OpeningHour  = 9
	ClosingHour  = 17
	SlotInterval = 30 * time.Minute
)

// Slot is a candidate replacement time offered during a reschedule.
type Slot struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	StaffID   uint      `json:"staff_id"`
	StaffName string    `json:"staff_name"`
	Available bool      `json:"available"`
}

// AvailabilityFunc reports whether staff is free for [start, end). ReplacementSlots
// treats a nil func as always available; real callers inject a conflict check.
type AvailabilityFunc func(staffID uint, start, end time.Time) bool

// ReplacementSlots generates the candidate slots for moving appt to the given
// calendar day. Slots run at SlotInterval cadence across the operating window in
// day's location, keep the appointment's staff and duration, and skip both starts at
// or before now and the appointment's current start. The result is ordered by start
// time and is a pure function of its inputs; now must be captured once by the caller.
func ReplacementSlots(day time.Time, appt *models.Appointment, now time.Time, available AvailabilityFunc) []Slot {
	loc := day.Location()
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), OpeningHour, 0, 0, 0, loc)
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), ClosingHour, 0, 0, 0, loc)
	duration := appt.Duration()

	var slots []Slot
	for t := windowStart; t.Before(windowEnd); t = t.Add(SlotInterval) {
		if !t.After(now) {
			continue
		}
		if t.Equal(appt.StartTime) {
			continue
		}
		slot := Slot{
			ID:        fmt.Sprintf("slot-%02d%02d", t.Hour(), t.Minute()),
			StartTime: t,
			EndTime:   t.Add(duration),
			StaffID:   appt.StaffID,
			StaffName: appt.Staff.Name,
			Available: true,
		}
		if available != nil {
			slot.Available = available(appt.StaffID, slot.StartTime, slot.EndTime)
		}
		slots = append(slots, slot)
	}
	return slots
}
