package models

import (
	"time"
)

// User is an authenticated account: a client self-service login or a staff/admin
// back-office login, distinguished by Role.
type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	Email        string        `json:"email" gorm:"unique"`
	Password     string        `json:"password,omitempty"`
	IsVerified   bool          `json:"is_verified"`
	OTP          string        `json:"otp,omitempty"`
	OTPExpiresAt time.Time     `json:"otp_expires_at,omitempty"`
	RoleID       uint          `json:"role_id"`
	Role         Role          `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:StaffID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// OTPValid reports whether code matches the stored one-time code and the code has
// not expired. An empty stored code never matches.
func (u *User) OTPValid(code string, now time.Time) bool {
	if u.OTP == "" || code == "" {
		return false
	}
	if u.OTP != code {
		return false
	}
	return now.Before(u.OTPExpiresAt)
}
