package booking

import (
	"regexp"
	"strings"

	"maison/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s()+\-]+$`)
)

// ValidateBookingForm checks the contact and preference fields of a booking
// draft and returns a field → message map. Pure and deterministic; callers
// re-run it on every form mutation and once more before submit.
func ValidateBookingForm(form models.BookingFormData) models.BookingValidation {
	errs := make(map[string]string)

	if strings.TrimSpace(form.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(form.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}

	if strings.TrimSpace(form.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(form.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(form.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(form.Phone) {
		errs["phone"] = "Please enter a valid phone number"
	}

	switch form.CommunicationType {
	case models.CommunicationInPerson, models.CommunicationVideo, models.CommunicationPhone:
	default:
		errs["communicationType"] = "Please select how you would like to meet"
	}

	if len(form.SpecialRequests) > models.MaxSpecialRequestsLen {
		errs["specialRequests"] = "Special requests must be 500 characters or fewer"
	}

	if form.Recurring {
		switch form.RecurringFrequency {
		case models.FrequencyWeekly, models.FrequencyBiweekly, models.FrequencyMonthly:
		default:
			errs["recurringFrequency"] = "Please choose how often you would like to meet"
		}
	}

	return models.BookingValidation{IsValid: len(errs) == 0, Errors: errs}
}
