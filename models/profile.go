package models

import (
	"time"

	"gorm.io/gorm"
)

// ClientProfile is the self-service profile document created at signup. When the
// record linker finds a pre-existing Client for the signup email the contact and
// medical fields below are imported from it; either way onboarding starts incomplete
// so the user reviews the data.
type ClientProfile struct {
	gorm.Model
	UserID   uint    `json:"user_id" gorm:"uniqueIndex"`
	User     User    `json:"user" gorm:"foreignKey:UserID"`
	ClientID *uint   `json:"client_id,omitempty"`
	Client   *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`

	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Mobile     string `json:"mobile"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`

	MedicalConditions string `json:"medical_conditions"`
	Medications       string `json:"medications"`
	Allergies         string `json:"allergies"`

	Goals         StringList  `json:"goals" gorm:"type:jsonb"`
	HealthMetrics StringList  `json:"health_metrics" gorm:"type:jsonb"`
	Preferences   Preferences `json:"preferences" gorm:"type:jsonb"`

	PhotoURL            string     `json:"photo_url"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	OnboardedAt         *time.Time `json:"onboarded_at,omitempty"`
}
