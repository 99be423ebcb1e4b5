package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a list of strings as a JSONB column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

// NotificationPrefs controls which channels a client is contacted on.
type NotificationPrefs struct {
	Email     bool `json:"email"`
	SMS       bool `json:"sms"`
	Reminders bool `json:"reminders"`
}

// PrivacyPrefs controls what a client shares with centre staff.
type PrivacyPrefs struct {
	ShareMedicalData bool `json:"share_medical_data"`
	ShareProgress    bool `json:"share_progress"`
}

// Preferences is the profile preferences block, stored as JSONB.
type Preferences struct {
	Timezone      string            `json:"timezone"`
	Notifications NotificationPrefs `json:"notifications"`
	Privacy       PrivacyPrefs      `json:"privacy"`
}

// Value implements the driver.Valuer interface
func (p Preferences) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (p *Preferences) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal Preferences: unsupported type %T", value)
	}

	return json.Unmarshal(data, p)
}

// DefaultPreferences returns the preferences block for a fresh profile.
func DefaultPreferences() Preferences {
	return Preferences{
		Timezone: "Africa/Johannesburg",
		Notifications: NotificationPrefs{
			Email:     true,
			Reminders: true,
		},
	}
}
