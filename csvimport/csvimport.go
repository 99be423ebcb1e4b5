// Package csvimport parses bulk client uploads. Source files come from several
// legacy systems with inconsistent column names, so headers are resolved through an
// explicit alias table and validated against the required-field set before any row
// is turned into a record.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/VeloF2025/Life-Arrow-V1-sub003/models"
)

// Canonical field names.
const (
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldEmail      = "email"
	FieldMobile     = "mobile"
	FieldAddress1   = "address_line_1"
	FieldAddress2   = "address_line_2"
	FieldCity       = "city"
	FieldProvince   = "province"
	FieldPostalCode = "postal_code"
	FieldCountry    = "country"
	FieldConditions = "medical_conditions"
	FieldAllergies  = "allergies"
)

// headerAliases maps every accepted header spelling to its canonical field.
var headerAliases = map[string]string{
	"first_name": FieldFirstName, "firstname": FieldFirstName, "first name": FieldFirstName, "name": FieldFirstName, "given name": FieldFirstName,
	"last_name": FieldLastName, "lastname": FieldLastName, "last name": FieldLastName, "surname": FieldLastName, "family name": FieldLastName,
	"email": FieldEmail, "email address": FieldEmail, "e-mail": FieldEmail,
	"mobile": FieldMobile, "mobile number": FieldMobile, "cell": FieldMobile, "cellphone": FieldMobile, "phone": FieldMobile, "phone number": FieldMobile,
	"address": FieldAddress1, "address 1": FieldAddress1, "address line 1": FieldAddress1, "street": FieldAddress1,
	"address 2": FieldAddress2, "address line 2": FieldAddress2,
	"city": FieldCity, "town": FieldCity,
	"province": FieldProvince, "state": FieldProvince,
	"postal_code": FieldPostalCode, "postal code": FieldPostalCode, "zip": FieldPostalCode, "zip code": FieldPostalCode, "postcode": FieldPostalCode,
	"country":            FieldCountry,
	"medical_conditions": FieldConditions, "medical conditions": FieldConditions, "conditions": FieldConditions,
	"allergies": FieldAllergies, "allergy": FieldAllergies,
}

var requiredFields = []string{FieldFirstName, FieldLastName, FieldEmail}

// RowError reports a rejected data row; line numbers are 1-based and include the
// header line.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result is the outcome of parsing one upload.
type Result struct {
	Clients []models.Client `json:"-"`
	Errors  []RowError      `json:"errors"`
}

// Parse reads a client CSV. It fails outright when the header is unusable (missing a
// required column); bad data rows are collected per line so the rest of the file
// still imports.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[int]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := headerAliases[key]; ok {
			columns[i] = canonical
			seen[canonical] = true
		}
	}
	var missing []string
	for _, f := range requiredFields {
		if !seen[f] {
			missing = append(missing, fmt.Sprintf("%q", f))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	result := &Result{}
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}

		fields := make(map[string]string, len(columns))
		for i, canonical := range columns {
			if i < len(record) {
				fields[canonical] = strings.TrimSpace(record[i])
			}
		}

		if reason := validateRow(fields); reason != "" {
			result.Errors = append(result.Errors, RowError{Line: line, Reason: reason})
			continue
		}

		result.Clients = append(result.Clients, models.Client{
			FirstName:         fields[FieldFirstName],
			LastName:          fields[FieldLastName],
			Email:             strings.ToLower(fields[FieldEmail]),
			Mobile:            fields[FieldMobile],
			AddressLine1:      fields[FieldAddress1],
			AddressLine2:      fields[FieldAddress2],
			City:              fields[FieldCity],
			Province:          fields[FieldProvince],
			PostalCode:        fields[FieldPostalCode],
			Country:           fields[FieldCountry],
			MedicalConditions: fields[FieldConditions],
			Allergies:         fields[FieldAllergies],
			Status:            models.ClientPendingVerification,
		})
	}
	return result, nil
}

func validateRow(fields map[string]string) string {
	for _, f := range requiredFields {
		if fields[f] == "" {
			return fmt.Sprintf("missing required field %q", f)
		}
	}
	email := fields[FieldEmail]
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return fmt.Sprintf("invalid email %q", email)
	}
	return ""
}
