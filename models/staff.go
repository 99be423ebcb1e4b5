package models

import (
	"gorm.io/gorm"
)

// StaffProfile holds the back-office details for a staff account.
type StaffProfile struct {
	gorm.Model
	UserID         uint            `json:"user_id"`
	User           User            `json:"user" gorm:"foreignKey:UserID"`
	Title          string          `json:"title"`
	Specialization string          `json:"specialization"`
	Qualifications StringList      `json:"qualifications" gorm:"type:jsonb"`
	CentreID       *uint           `json:"centre_id"`
	Centre         TreatmentCentre `json:"centre" gorm:"foreignKey:CentreID"`
	PhotoURL       string          `json:"photo_url"`
	Active         bool            `json:"active" gorm:"default:true"`
}
