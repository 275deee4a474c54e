package address

import (
	"bookstore/internal/seed"
	"regexp"
	"slices"
	"strings"
)

// FieldErrors maps a form field (json name) to its message. Empty means valid.
type FieldErrors map[string]string

type postalRule struct {
	pattern *regexp.Regexp
	message string
}

var postalRules = map[string]postalRule{
	"US": {regexp.MustCompile(`^\d{5}(-\d{4})?$`), "Invalid ZIP code format (e.g., 12345 or 12345-6789)"},
	"CA": {regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] ?\d[A-Za-z]\d$`), "Invalid postal code format (e.g., K1A 0A6)"},
	"GB": {regexp.MustCompile(`^[A-Za-z]{1,2}\d[A-Za-z\d]? ?\d[A-Za-z]{2}$`), "Invalid postcode format (e.g., SW1A 1AA)"},
	"DE": {regexp.MustCompile(`^\d{5}$`), "Invalid postal code format (e.g., 12345)"},
	"FR": {regexp.MustCompile(`^\d{5}$`), "Invalid postal code format (e.g., 75001)"},
	"AU": {regexp.MustCompile(`^\d{4}$`), "Invalid postcode format (e.g., 2000)"},
	"JP": {regexp.MustCompile(`^\d{3}-?\d{4}$`), "Invalid postal code format (e.g., 100-0001)"},
	"IN": {regexp.MustCompile(`^\d{6}$`), "Invalid PIN code format (e.g., 110001)"},
	"BR": {regexp.MustCompile(`^\d{5}-?\d{3}$`), "Invalid CEP format (e.g., 01310-100)"},
	"MX": {regexp.MustCompile(`^\d{5}$`), "Invalid postal code format (e.g., 01000)"},
}

var phonePattern = regexp.MustCompile(`^[\+]?[\d\s\-\(\)]+$`)

// Validate checks f against the per-country rules. countries decides which countries have
// subdivisions; for those the state must be one of their codes.
func Validate(f Form, countries []seed.Country) FieldErrors {
	errs := FieldErrors{}

	required := []struct{ field, value, message string }{
		{"label", f.Label, "Label is required"},
		{"name", f.Name, "Name is required"},
		{"street", f.Street, "Street address is required"},
		{"city", f.City, "City is required"},
		{"country", f.Country, "Country is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.field] = r.message
		}
	}

	if states := statesOf(countries, f.Country); len(states) > 0 {
		switch {
		case strings.TrimSpace(f.State) == "":
			errs["state"] = "State/Province is required"
		case !slices.ContainsFunc(states, func(s seed.State) bool { return s.Code == f.State }):
			errs["state"] = "Please select a valid state/province"
		}
	}

	if strings.TrimSpace(f.ZipCode) == "" {
		errs["zipCode"] = "Postal/ZIP code is required"
	} else if rule, ok := postalRules[f.Country]; ok {
		if !rule.pattern.MatchString(f.ZipCode) {
			errs["zipCode"] = rule.message
		}
	} else if n := len(f.ZipCode); n < 3 || n > 10 {
		errs["zipCode"] = "Postal code must be between 3 and 10 characters"
	}

	if f.Phone != "" && !phonePattern.MatchString(f.Phone) {
		errs["phone"] = "Invalid phone number format"
	}

	return errs
}

func statesOf(countries []seed.Country, code string) []seed.State {
	for _, c := range countries {
		if c.Code == code {
			return c.States
		}
	}
	return nil
}

func PostalCodeLabel(country string) string {
	switch country {
	case "US":
		return "ZIP Code"
	case "GB", "AU":
		return "Postcode"
	case "IN":
		return "PIN Code"
	case "BR":
		return "CEP"
	default:
		return "Postal Code"
	}
}

func StateLabel(country string) string {
	switch country {
	case "US", "DE", "BR", "MX":
		return "State"
	case "CA":
		return "Province"
	case "AU":
		return "State/Territory"
	case "GB":
		return "Country"
	case "FR":
		return "Region"
	case "IN":
		return "State/UT"
	case "JP":
		return "Prefecture"
	default:
		return "State/Province"
	}
}
