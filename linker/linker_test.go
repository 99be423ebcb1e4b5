package linker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
)

type fakeStore struct {
	clients map[string]*models.Client

	lookupErr  error
	linkErr    error
	profileErr error

	linkedClientID  uint
	linkedAccountID uint
	linkedAt        time.Time
	created         *models.ClientProfile
}

func (f *fakeStore) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.clients[email], nil
}

func (f *fakeStore) LinkAccount(ctx context.Context, clientID, accountID uint, at time.Time) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	f.linkedClientID = clientID
	f.linkedAccountID = accountID
	f.linkedAt = at
	return nil
}

func (f *fakeStore) CreateProfile(ctx context.Context, profile *models.ClientProfile) error {
	if f.profileErr != nil {
		return f.profileErr
	}
	f.created = profile
	return nil
}

func janeRecord() *models.Client {
	c := &models.Client{
		FirstName:         "Jane",
		LastName:          "Doe",
		Email:             "jane@example.com",
		Mobile:            "+27821234567",
		MedicalConditions: "asthma",
		Status:            models.ClientPendingVerification,
	}
	c.ID = 42
	return c
}

func TestMatch_NormalizesEmail(t *testing.T) {
	store := &fakeStore{clients: map[string]*models.Client{"jane@example.com": janeRecord()}}
	l := New(store)

	match, err := l.Match(context.Background(), "  Jane@Example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.FirstName != "Jane" || match.LastName != "Doe" {
		t.Errorf("match fields wrong: %s %s", match.FirstName, match.LastName)
	}
}

func TestMatch_LookupFailureIsDistinct(t *testing.T) {
	store := &fakeStore{lookupErr: errors.New("connection reset")}
	l := New(store)

	match, err := l.Match(context.Background(), "jane@example.com")
	if match != nil {
		t.Error("expected nil match on lookup failure")
	}
	if !errors.Is(err, ErrLookup) {
		t.Errorf("expected ErrLookup, got %v", err)
	}
}

func TestMatch_EmptyEmail(t *testing.T) {
	store := &fakeStore{}
	l := New(store)

	match, err := l.Match(context.Background(), "   ")
	if match != nil || err != nil {
		t.Errorf("expected no match and no error, got %v, %v", match, err)
	}
}

func TestComplete_WithMatch(t *testing.T) {
	store := &fakeStore{}
	l := New(store)
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	profile, err := l.Complete(context.Background(), 99, janeRecord(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.linkedClientID != 42 || store.linkedAccountID != 99 {
		t.Errorf("link write wrong: client %d account %d", store.linkedClientID, store.linkedAccountID)
	}
	if !store.linkedAt.Equal(now) {
		t.Errorf("linked-at not stamped with now: %s", store.linkedAt)
	}
	if profile.FirstName != "Jane" || profile.LastName != "Doe" {
		t.Errorf("profile did not import name: %s %s", profile.FirstName, profile.LastName)
	}
	if profile.MedicalConditions != "asthma" {
		t.Errorf("profile did not import medical fields: %q", profile.MedicalConditions)
	}
	if profile.ClientID == nil || *profile.ClientID != 42 {
		t.Error("profile not tied back to the client record")
	}
	if profile.OnboardingCompleted {
		t.Error("imported data must still be reviewed: onboarding should start incomplete")
	}
	if store.created != profile {
		t.Error("profile was not written to the store")
	}
}

func TestComplete_NoMatch(t *testing.T) {
	store := &fakeStore{}
	l := New(store)

	profile, err := l.Complete(context.Background(), 99, nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.linkedAccountID != 0 {
		t.Error("no client record should be updated without a match")
	}
	if profile.ClientID != nil {
		t.Error("profile should not reference a client record")
	}
	if profile.Goals == nil || len(profile.Goals) != 0 {
		t.Errorf("expected empty goals, got %v", profile.Goals)
	}
	if profile.HealthMetrics == nil || len(profile.HealthMetrics) != 0 {
		t.Errorf("expected empty health metrics, got %v", profile.HealthMetrics)
	}
	if profile.OnboardingCompleted {
		t.Error("onboarding should start incomplete")
	}
}

func TestComplete_LinkWriteFailure(t *testing.T) {
	store := &fakeStore{linkErr: errors.New("write timeout")}
	l := New(store)

	_, err := l.Complete(context.Background(), 99, janeRecord(), time.Now())
	if !errors.Is(err, ErrLinkWrite) {
		t.Errorf("expected ErrLinkWrite, got %v", err)
	}
	if store.created != nil {
		t.Error("profile must not be created after a failed link write")
	}
}

func TestComplete_ProfileCreateFailure(t *testing.T) {
	store := &fakeStore{profileErr: errors.New("write timeout")}
	l := New(store)

	_, err := l.Complete(context.Background(), 99, janeRecord(), time.Now())
	if !errors.Is(err, ErrProfileCreate) {
		t.Errorf("expected ErrProfileCreate, got %v", err)
	}
	// The link write already went through; the error must say so distinctly.
	if store.linkedAccountID != 99 {
		t.Error("expected link write to have completed before the profile failure")
	}
}
