package models

import (
	"gorm.io/gorm"
)

// Service is a bookable offering. Centre availability lives in the centre_services
// join table shared with TreatmentCentre.Services, so adding or removing a centre is
// one write that both sides observe.
type Service struct {
	gorm.Model
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int64  `json:"price_cents"`

	RequiredQualifications StringList `json:"required_qualifications" gorm:"type:jsonb"`
	RequiredEquipment      StringList `json:"required_equipment" gorm:"type:jsonb"`

	// Booking rules
	AdvanceBookingDays int  `json:"advance_booking_days"`
	CancellationHours  int  `json:"cancellation_hours"`
	RequiresApproval   bool `json:"requires_approval"`

	Active  bool              `json:"active" gorm:"default:true"`
	Centres []TreatmentCentre `json:"centres,omitempty" gorm:"many2many:centre_services;"`
}

// SetCentres replaces the set of centres offering this service. Both directions of
// the membership (service→centres and centre→services) read the same join table, so
// this is the single place availability is edited.
func (s *Service) SetCentres(tx *gorm.DB, centreIDs []uint) error {
	var centres []TreatmentCentre
	if len(centreIDs) > 0 {
		if err := tx.Where("id IN ?", centreIDs).Find(&centres).Error; err != nil {
			return err
		}
	}
	return tx.Model(s).Association("Centres").Replace(centres)
}
