package models

import (
	"gorm.io/gorm"
)

// TreatmentCentre is a physical service-delivery location.
type TreatmentCentre struct {
	gorm.Model
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	Province     string `json:"province"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`

	Active   bool      `json:"active" gorm:"default:true"`
	Services []Service `json:"services,omitempty" gorm:"many2many:centre_services;"`
}
