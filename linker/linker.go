// Package linker ties a new signup account to a pre-existing client record that
// shares the same email, importing the record's details into the account's profile.
package linker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
)

// The two signup-time writes (link the record, create the profile) are not atomic.
// Each failure mode gets its own sentinel so callers can tell the user exactly what
// state the account ended up in.
var (
	// ErrLookup means the email-match query itself failed. Signup continues as if
	// there were no match, but callers must report it: proceeding silently risks a
	// duplicate, unlinked client record.
	ErrLookup = errors.New("client record lookup failed")

	// ErrLinkWrite means the account was created but the matched client record could
	// not be updated to point at it.
	ErrLinkWrite = errors.New("client record link update failed")

	// ErrProfileCreate means the profile document could not be created. The client
	// record, if any, may already be linked by the time this is returned.
	ErrProfileCreate = errors.New("profile creation failed")
)

// ClientStore is the narrow slice of the data layer the linker needs.
type ClientStore interface {
	// FindByEmail returns the first client record with the given normalized email,
	// or nil when there is none.
	FindByEmail(ctx context.Context, email string) (*models.Client, error)
	// LinkAccount stamps the record with the account id, flips it active and records
	// when the link happened.
	LinkAccount(ctx context.Context, clientID, accountID uint, at time.Time) error
	CreateProfile(ctx context.Context, profile *models.ClientProfile) error
}

type Linker struct {
	store ClientStore
}

func New(store ClientStore) *Linker {
	return &Linker{store: store}
}

// NormalizeEmail is the canonical form used for matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Match looks up a pre-existing client record for the signup email. A store failure
// is returned wrapped in ErrLookup together with a nil match: the caller logs it and
// continues signup as if nothing matched.
func (l *Linker) Match(ctx context.Context, email string) (*models.Client, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return nil, nil
	}
	client, err := l.store.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	return client, nil
}

// Complete runs the signup-time writes after the account has been created. With a
// match it links the record and builds the profile from the record's contact and
// medical fields; without one it creates an empty-defaults profile. Onboarding is
// always left incomplete so the user reviews any imported data.
func (l *Linker) Complete(ctx context.Context, accountID uint, match *models.Client, now time.Time) (*models.ClientProfile, error) {
	profile := &models.ClientProfile{
		UserID:        accountID,
		Goals:         models.StringList{},
		HealthMetrics: models.StringList{},
		Preferences:   models.DefaultPreferences(),
	}

	if match != nil {
		if err := l.store.LinkAccount(ctx, match.ID, accountID, now); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLinkWrite, err)
		}
		clientID := match.ID
		profile.ClientID = &clientID
		profile.FirstName = match.FirstName
		profile.LastName = match.LastName
		profile.Mobile = match.Mobile
		profile.Address = match.AddressLine1
		profile.City = match.City
		profile.PostalCode = match.PostalCode
		profile.MedicalConditions = match.MedicalConditions
		profile.Medications = match.Medications
		profile.Allergies = match.Allergies
	}

	if err := l.store.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileCreate, err)
	}
	return profile, nil
}
