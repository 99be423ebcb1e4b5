package models

import (
	"testing"
	"time"
)

func TestOTPValid(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		stored  string
		expires time.Time
		code    string
		want    bool
	}{
		{"matching code before expiry", "482913", now.Add(5 * time.Minute), "482913", true},
		{"wrong code", "482913", now.Add(5 * time.Minute), "000000", false},
		{"expired code", "482913", now.Add(-time.Minute), "482913", false},
		{"expires exactly now", "482913", now, "482913", false},
		{"no code issued", "", now.Add(5 * time.Minute), "", false},
		{"empty submission", "482913", now.Add(5 * time.Minute), "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := User{OTP: tc.stored, OTPExpiresAt: tc.expires}
			if got := u.OTPValid(tc.code, now); got != tc.want {
				t.Errorf("OTPValid(%q) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}
