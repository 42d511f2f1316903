package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		CustomerInfo: SubmissionCustomer{
			Name:  "Jane Smith",
			Email: "jane@example.com",
		},
		ShippingAddress: &SubmissionAddress{
			Street: "123 Main St",
			City:   "Austin",
			State:  "TX",
			Zip:    "78701",
		},
		Items: []SubmissionItem{
			{ProductType: "die_cut_sticker", Size: "5x5", Quantity: 50, UnitPrice: 143},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("ValidSubmission", func(t *testing.T) {
		assert.Empty(t, Validate(validSubmission()))
	})

	t.Run("MissingName", func(t *testing.T) {
		s := validSubmission()
		s.CustomerInfo.Name = ""
		assert.Contains(t, Validate(s), "Missing required customer field: name")
	})

	t.Run("FullNameSatisfiesName", func(t *testing.T) {
		s := validSubmission()
		s.CustomerInfo.Name = ""
		s.CustomerInfo.FullName = "Legacy Jane"
		assert.Empty(t, Validate(s))
	})

	t.Run("MissingEmail", func(t *testing.T) {
		s := validSubmission()
		s.CustomerInfo.Email = ""
		assert.Contains(t, Validate(s), "Missing required customer field: email")
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		s := validSubmission()
		s.CustomerInfo.Email = "not-an-email"
		errs := Validate(s)
		assert.Contains(t, errs, "Invalid email format")
		assert.NotContains(t, errs, "Missing required customer field: email")
	})

	t.Run("AccumulatesAllViolations", func(t *testing.T) {
		s := validSubmission()
		s.CustomerInfo.Email = "bad@"
		s.ShippingAddress.City = ""
		errs := Validate(s)
		require.Len(t, errs, 2)
		assert.Contains(t, errs, "Invalid email format")
		assert.Contains(t, errs, "Missing required shipping field: city")
	})

	t.Run("MissingStreet", func(t *testing.T) {
		s := validSubmission()
		s.ShippingAddress.Street = ""
		assert.Contains(t, Validate(s), "Missing required shipping field: address")
	})

	t.Run("LegacyAddressFieldSatisfiesStreet", func(t *testing.T) {
		s := validSubmission()
		s.ShippingAddress.Street = ""
		s.ShippingAddress.Address = "9 Legacy Rd"
		assert.Empty(t, Validate(s))
	})

	t.Run("NestedAddressAccepted", func(t *testing.T) {
		s := validSubmission()
		s.CustomerInfo.ShippingAddress = s.ShippingAddress
		s.ShippingAddress = nil
		assert.Empty(t, Validate(s))
	})

	t.Run("NoAddressAtAll", func(t *testing.T) {
		s := validSubmission()
		s.ShippingAddress = nil
		errs := Validate(s)
		assert.Contains(t, errs, "Missing required shipping field: address")
		assert.Contains(t, errs, "Missing required shipping field: city")
		assert.Contains(t, errs, "Missing required shipping field: state")
		assert.Contains(t, errs, "Missing required shipping field: zip")
	})

	t.Run("NoItems", func(t *testing.T) {
		s := validSubmission()
		s.Items = nil
		assert.Contains(t, Validate(s), "Order must contain at least one item")
	})

	t.Run("ItemViolationsNumbered", func(t *testing.T) {
		s := validSubmission()
		s.Items = append(s.Items, SubmissionItem{
			ProductType: "magnet", Size: "3x3", Quantity: 0, UnitPrice: 100,
		})
		assert.Contains(t, Validate(s), "Item 2: Invalid quantity")
	})

	t.Run("ItemMissingFields", func(t *testing.T) {
		s := validSubmission()
		s.Items = []SubmissionItem{{Quantity: 5, UnitPrice: 100}}
		errs := Validate(s)
		assert.Contains(t, errs, "Item 1: Missing required field 'productType'")
		assert.Contains(t, errs, "Item 1: Missing required field 'size'")
	})

	t.Run("NegativePrices", func(t *testing.T) {
		s := validSubmission()
		s.Items[0].UnitPrice = -1
		s.Items[0].TotalPrice = -1
		errs := Validate(s)
		assert.Contains(t, errs, "Item 1: Invalid unit price")
		assert.Contains(t, errs, "Item 1: Invalid total price")
	})
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"first.last+tag@sub.domain.io",
		"UPPER@EXAMPLE.ORG",
	}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), "email %q", e)
	}

	invalid := []string{
		"", "plain", "@nouser.com", "user@", "user@domain", "user@domain.c",
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), "email %q", e)
	}
}
