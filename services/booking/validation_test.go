package booking

import (
	"strings"
	"testing"

	"maison/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.BookingFormData {
	return models.BookingFormData{
		FirstName:         "Claire",
		LastName:          "Beaumont",
		Email:             "claire@example.com",
		Phone:             "+1 (212) 555-0101",
		ConsultationType:  "appraisal",
		Location:          "manhattan",
		Date:              "2026-06-22",
		TimeSlot:          "slot-1",
		CommunicationType: models.CommunicationInPerson,
	}
}

func TestValidateBookingForm_Valid(t *testing.T) {
	result := ValidateBookingForm(validForm())
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateBookingForm_RequiredFields(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*models.BookingFormData)
		errField string
	}{
		{"missing first name", func(f *models.BookingFormData) { f.FirstName = "  " }, "firstName"},
		{"missing last name", func(f *models.BookingFormData) { f.LastName = "" }, "lastName"},
		{"missing email", func(f *models.BookingFormData) { f.Email = "" }, "email"},
		{"malformed email", func(f *models.BookingFormData) { f.Email = "not-an-email" }, "email"},
		{"missing phone", func(f *models.BookingFormData) { f.Phone = "" }, "phone"},
		{"malformed phone", func(f *models.BookingFormData) { f.Phone = "call me" }, "phone"},
		{"missing communication type", func(f *models.BookingFormData) { f.CommunicationType = "" }, "communicationType"},
		{"bogus communication type", func(f *models.BookingFormData) { f.CommunicationType = "telegraph" }, "communicationType"},
		{"oversized special requests", func(f *models.BookingFormData) {
			f.SpecialRequests = strings.Repeat("x", models.MaxSpecialRequestsLen+1)
		}, "specialRequests"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			result := ValidateBookingForm(form)
			assert.False(t, result.IsValid)
			require.Contains(t, result.Errors, tc.errField)
			assert.NotEmpty(t, result.Errors[tc.errField])
		})
	}
}

func TestValidateBookingForm_RecurringFrequencyGating(t *testing.T) {
	form := validForm()
	form.Recurring = true

	result := ValidateBookingForm(form)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "recurringFrequency")

	form.RecurringFrequency = models.FrequencyBiweekly
	assert.True(t, ValidateBookingForm(form).IsValid)

	form.RecurringFrequency = "daily"
	assert.False(t, ValidateBookingForm(form).IsValid)

	// Frequency is ignored entirely when recurring is off.
	form.Recurring = false
	form.RecurringFrequency = "daily"
	assert.True(t, ValidateBookingForm(form).IsValid)
}

func TestValidateBookingForm_PhonePatternIsPermissive(t *testing.T) {
	form := validForm()
	for _, phone := range []string{"2125550101", "+44 20 7946 0958", "(631) 555-0192", "555-0101"} {
		form.Phone = phone
		assert.True(t, ValidateBookingForm(form).IsValid, "phone %q should pass", phone)
	}
}
