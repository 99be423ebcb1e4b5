package scheduling

import (
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
)

// ModificationCutoff is how far ahead of the start time a client may still cancel or
// reschedule.
const ModificationCutoff = 24 * time.Hour

// CanModify reports whether the appointment may currently be cancelled or
// rescheduled: the status must still be open (scheduled or confirmed) and the start
// time must be strictly later than now plus the cutoff. Safe to call on every
// request; it never writes.
func CanModify(appt *models.Appointment, now time.Time) bool {
	if appt.Status != models.StatusScheduled && appt.Status != models.StatusConfirmed {
		return false
	}
	return appt.StartTime.After(now.Add(ModificationCutoff))
}
