package scheduling

import (
	"testing"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
)

func testAppointment(start time.Time, minutes int) *models.Appointment {
	return &models.Appointment{
		StaffID:         7,
		Staff:           models.User{ID: 7, Name: "Thandi Nkosi"},
		StartTime:       start,
		EndTime:         start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		Status:          models.StatusConfirmed,
	}
}

func TestReplacementSlots_FullDay(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, loc)
	// Appointment at 11:00 in two days; generating for its own day well ahead of time.
	appt := testAppointment(day.Add(11*time.Hour), 60)
	now := day.AddDate(0, 0, -2)

	slots := ReplacementSlots(day, appt, now, nil)
	// 16 half-hour starts between 09:00 and 16:30, minus the current 11:00 slot.
	if len(slots) != 15 {
		t.Fatalf("expected 15 slots, got %d", len(slots))
	}
	if !slots[0].StartTime.Equal(day.Add(9 * time.Hour)) {
		t.Errorf("expected first slot 09:00, got %s", slots[0].StartTime.Format("15:04"))
	}
	last := slots[len(slots)-1]
	if !last.StartTime.Equal(day.Add(16*time.Hour + 30*time.Minute)) {
		t.Errorf("expected last slot 16:30, got %s", last.StartTime.Format("15:04"))
	}
	for _, s := range slots {
		if s.StartTime.Equal(appt.StartTime) {
			t.Errorf("slot %s matches the current start time", s.ID)
		}
		if !s.EndTime.Equal(s.StartTime.Add(60 * time.Minute)) {
			t.Errorf("slot %s end is not start+60m", s.ID)
		}
		if s.StaffID != appt.StaffID || s.StaffName != "Thandi Nkosi" {
			t.Errorf("slot %s did not carry staff over", s.ID)
		}
	}
}

func TestReplacementSlots_ExcludesPast(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, loc)
	appt := testAppointment(day.Add(15*time.Hour), 30)

	// Mid-day: everything up to and including 13:00 is gone.
	now := day.Add(13 * time.Hour)
	slots := ReplacementSlots(day, appt, now, nil)
	// Remaining starts: 13:30..16:30 = 7, minus the 15:00 current start.
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if !s.StartTime.After(now) {
			t.Errorf("slot %s starts at or before now", s.ID)
		}
	}
}

func TestReplacementSlots_Deterministic(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, loc)
	appt := testAppointment(day.Add(10*time.Hour), 45)
	now := day.Add(9*time.Hour + 10*time.Minute)

	first := ReplacementSlots(day, appt, now, nil)
	second := ReplacementSlots(day, appt, now, nil)
	if len(first) != len(second) {
		t.Fatalf("slot counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
	for i := 1; i < len(first); i++ {
		if !first[i].StartTime.After(first[i-1].StartTime) {
			t.Errorf("slots out of order at index %d", i)
		}
	}
}

func TestReplacementSlots_SlotIDs(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, loc)
	appt := testAppointment(day.Add(12*time.Hour), 30)
	now := day.AddDate(0, 0, -1)

	slots := ReplacementSlots(day, appt, now, nil)
	if slots[0].ID != "slot-0900" {
		t.Errorf("expected first id slot-0900, got %s", slots[0].ID)
	}
	if slots[1].ID != "slot-0930" {
		t.Errorf("expected second id slot-0930, got %s", slots[1].ID)
	}
}

func TestReplacementSlots_AvailabilityHook(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, loc)
	appt := testAppointment(day.Add(10*time.Hour), 30)
	now := day.AddDate(0, 0, -1)

	busyStart := day.Add(14 * time.Hour)
	busyEnd := day.Add(15 * time.Hour)
	slots := ReplacementSlots(day, appt, now, func(staffID uint, start, end time.Time) bool {
		return !(start.Before(busyEnd) && busyStart.Before(end))
	})

	for _, s := range slots {
		overlapsBusy := s.StartTime.Before(busyEnd) && busyStart.Before(s.EndTime)
		if s.Available == overlapsBusy {
			t.Errorf("slot %s availability flag wrong: available=%v overlapsBusy=%v", s.ID, s.Available, overlapsBusy)
		}
	}
}
