package utils

import (
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/db"
	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
)

// CheckStaffAvailability reports whether the staff member has no open appointment
// overlapping [start, end). Cancelled and historical statuses do not block a slot.
func CheckStaffAvailability(staffID uint, start, end time.Time) (bool, error) {
	var conflict models.Appointment
	err := db.DB.Raw(`
		SELECT *
		FROM appointments
		WHERE staff_id = ?
		  AND deleted_at IS NULL
		  AND status IN ('scheduled', 'confirmed')
		  AND start_time < ? AND end_time > ?
		LIMIT 1
	`, staffID, end, start).Scan(&conflict).Error
	if err != nil {
		return false, err
	}
	return conflict.ID == 0, nil
}
