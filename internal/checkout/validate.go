package checkout

import (
	"regexp"
	"sort"
	"strings"
)

// FieldErrors maps a form field to its validation message, so the client can
// surface each error inline on the relevant input.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validate rejects malformed form input before any collaborator call.
func validate(req SubmitRequest) error {
	errs := FieldErrors{}
	if len(strings.TrimSpace(req.Name)) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}
	if !emailPattern.MatchString(req.Email) {
		errs["email"] = "Invalid email address"
	}
	if countDigits(req.Contact) < 10 {
		errs["contact"] = "Phone number must be at least 10 digits"
	}
	if len(strings.TrimSpace(req.Address)) < 5 {
		errs["address"] = "Address must be at least 5 characters"
	}
	if len(strings.TrimSpace(req.City)) < 2 {
		errs["city"] = "City must be at least 2 characters"
	}
	if len(strings.TrimSpace(req.State)) < 2 {
		errs["state"] = "State must be at least 2 characters"
	}
	if len(strings.TrimSpace(req.ZipCode)) < 5 {
		errs["zipCode"] = "ZIP code must be at least 5 digits"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
