package order

import (
	"fmt"
	"regexp"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether the address has the simple
// local@domain.tld shape required for intake.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// Validate runs the customer/address check and the items check against
// the raw submission and returns every violation found. An empty slice
// signals acceptance. Field presence is judged through the same alias
// accessors the reconciler uses, so the two always agree.
func Validate(s Submission) []string {
	errs := validateCustomer(s)
	return append(errs, validateItems(s.Items)...)
}

func validateCustomer(s Submission) []string {
	var errs []string

	if s.CustomerInfo.DisplayName() == "" {
		errs = append(errs, "Missing required customer field: name")
	}

	switch email := s.CustomerInfo.Email; {
	case email == "":
		errs = append(errs, "Missing required customer field: email")
	case !emailRe.MatchString(email):
		errs = append(errs, "Invalid email format")
	}

	addr := s.Address()
	if addr.StreetLine() == "" {
		errs = append(errs, "Missing required shipping field: address")
	}
	for _, f := range []struct{ name, value string }{
		{"city", addr.City},
		{"state", addr.State},
		{"zip", addr.Zip},
	} {
		if f.value == "" {
			errs = append(errs, "Missing required shipping field: "+f.name)
		}
	}

	return errs
}

func validateItems(items []SubmissionItem) []string {
	if len(items) == 0 {
		return []string{"Order must contain at least one item"}
	}

	var errs []string
	for i, item := range items {
		n := i + 1
		if item.ProductType == "" {
			errs = append(errs, fmt.Sprintf("Item %d: Missing required field 'productType'", n))
		}
		if item.Size == "" {
			errs = append(errs, fmt.Sprintf("Item %d: Missing required field 'size'", n))
		}
		if item.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Invalid quantity", n))
		}
		if item.UnitPrice < 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Invalid unit price", n))
		}
		if item.TotalPrice < 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Invalid total price", n))
		}
	}
	return errs
}
