package models

import (
	"time"

	"gorm.io/gorm"
)

type ClientStatus string

const (
	ClientActive              ClientStatus = "active"
	ClientInactive            ClientStatus = "inactive"
	ClientPendingVerification ClientStatus = "pending_verification"
	ClientSuspended           ClientStatus = "suspended"
)

// Client is a person receiving services at a centre. A record can exist before the
// person ever signs up; signup links the record to a User account by email.
type Client struct {
	gorm.Model
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" gorm:"index"`
	Mobile    string `json:"mobile"`

	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	Province     string `json:"province"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`

	MedicalConditions string `json:"medical_conditions"`
	Medications       string `json:"medications"`
	Allergies         string `json:"allergies"`

	Status          ClientStatus    `json:"status"`
	NearestCentreID *uint           `json:"nearest_centre_id"`
	NearestCentre   TreatmentCentre `json:"nearest_centre" gorm:"foreignKey:NearestCentreID"`
	AddedTime       time.Time       `json:"added_time"`

	// Set once by the record linker at signup; at most one account per record.
	AccountID *uint      `json:"account_id,omitempty"`
	LinkedAt  *time.Time `json:"linked_at,omitempty"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = ClientPendingVerification
	}
	if c.AddedTime.IsZero() {
		c.AddedTime = time.Now()
	}
	return nil
}

// FullName joins the name fields for display and notification mail.
func (c *Client) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
