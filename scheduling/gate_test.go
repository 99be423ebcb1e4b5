package scheduling

import (
	"testing"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
)

func TestCanModify_StatusRules(t *testing.T) {
	now := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)
	farOut := now.Add(72 * time.Hour)

	cases := []struct {
		status models.AppointmentStatus
		want   bool
	}{
		{models.StatusScheduled, true},
		{models.StatusConfirmed, true},
		{models.StatusCompleted, false},
		{models.StatusCancelled, false},
		{models.StatusNoShow, false},
		{models.StatusRescheduled, false},
	}
	for _, tc := range cases {
		appt := &models.Appointment{Status: tc.status, StartTime: farOut}
		if got := CanModify(appt, now); got != tc.want {
			t.Errorf("status %s: got %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestCanModify_CutoffBoundary(t *testing.T) {
	now := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"23h59m out", now.Add(23*time.Hour + 59*time.Minute), false},
		{"exactly 24h out", now.Add(24 * time.Hour), false},
		{"24h01m out", now.Add(24*time.Hour + 1*time.Minute), true},
		{"already started", now.Add(-1 * time.Hour), false},
	}
	for _, tc := range cases {
		appt := &models.Appointment{Status: models.StatusScheduled, StartTime: tc.start}
		if got := CanModify(appt, now); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
