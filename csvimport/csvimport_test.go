package csvimport

import (
	"strings"
	"testing"
)

func TestParse_AliasedHeaders(t *testing.T) {
	csv := "Surname,Given Name,E-Mail,Cellphone,Zip Code\n" +
		"Doe,Jane,Jane@Example.com,+27821234567,8001\n" +
		"Smith,Bob,bob@example.com,,7700\n"

	result, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected row errors: %+v", result.Errors)
	}
	if len(result.Clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(result.Clients))
	}

	jane := result.Clients[0]
	if jane.FirstName != "Jane" || jane.LastName != "Doe" {
		t.Errorf("name mapping wrong: %s %s", jane.FirstName, jane.LastName)
	}
	if jane.Email != "jane@example.com" {
		t.Errorf("email not normalized: %s", jane.Email)
	}
	if jane.PostalCode != "8001" {
		t.Errorf("postal code alias not mapped: %s", jane.PostalCode)
	}
}

func TestParse_MissingRequiredColumn(t *testing.T) {
	csv := "First Name,Mobile\nJane,+27821234567\n"
	_, err := Parse(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for header without last_name and email columns")
	}
	if !strings.Contains(err.Error(), "last_name") || !strings.Contains(err.Error(), "email") {
		t.Errorf("error should name every missing column: %v", err)
	}
}

func TestParse_MissingSingleColumn(t *testing.T) {
	csv := "First Name,Last Name,Mobile\nJane,Doe,+27821234567\n"
	_, err := Parse(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for header without email column")
	}
	if !strings.Contains(err.Error(), "email") {
		t.Errorf("error should name the missing column: %v", err)
	}
	if strings.Contains(err.Error(), "last_name") {
		t.Errorf("error should only name columns that are missing: %v", err)
	}
}

func TestParse_BadRowsCollected(t *testing.T) {
	csv := "first_name,last_name,email\n" +
		"Jane,Doe,jane@example.com\n" +
		",Doe,missing@example.com\n" +
		"Bob,Smith,not-an-email\n" +
		"Ann,Jones,ann@example.com\n"

	result, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Clients) != 2 {
		t.Errorf("expected 2 good rows, got %d", len(result.Clients))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %d: %+v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].Line != 3 {
		t.Errorf("expected first error on line 3, got %d", result.Errors[0].Line)
	}
	if result.Errors[1].Line != 4 {
		t.Errorf("expected second error on line 4, got %d", result.Errors[1].Line)
	}
}

func TestParse_DefaultsStatus(t *testing.T) {
	csv := "first_name,last_name,email\nJane,Doe,jane@example.com\n"
	result, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result.Clients[0].Status) != "pending_verification" {
		t.Errorf("imported clients should start pending verification, got %s", result.Clients[0].Status)
	}
}
