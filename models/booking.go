package models

// Communication channel for the appointment.
const (
	CommunicationInPerson = "in-person"
	CommunicationVideo    = "video"
	CommunicationPhone    = "phone"
)

// Recurring appointment cadence.
const (
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

// MaxSpecialRequestsLen caps the free-text special requests field.
const MaxSpecialRequestsLen = 500

// NotificationPreferences holds the client's confirmation/reminder opt-ins.
type NotificationPreferences struct {
	EmailConfirmation bool `json:"emailConfirmation"`
	SMSConfirmation   bool `json:"smsConfirmation"`
	EmailReminder24h  bool `json:"emailReminder24h"`
	SMSReminder1h     bool `json:"smsReminder1h"`
}

// BookingFormData is the draft a client fills in across the wizard steps.
// Selection fields hold ids; the denormalized objects are derived via
// catalog lookups, never stored independently.
type BookingFormData struct {
	FirstName          string                  `json:"firstName"`
	LastName           string                  `json:"lastName"`
	Email              string                  `json:"email"`
	Phone              string                  `json:"phone"`
	ConsultationType   string                  `json:"consultationType"`
	Location           string                  `json:"location"`
	Date               string                  `json:"date"` // "YYYY-MM-DD"
	TimeSlot           string                  `json:"timeSlot"`
	CommunicationType  string                  `json:"communicationType"`
	SpecialRequests    string                  `json:"specialRequests,omitempty"`
	Recurring          bool                    `json:"recurring"`
	RecurringFrequency string                  `json:"recurringFrequency,omitempty"`
	Notifications      NotificationPreferences `json:"notifications"`
}

// BookingValidation is the outcome of validating a (possibly partial) form.
// A field appears in Errors only when it is invalid.
type BookingValidation struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// BookingConfirmation is the result of submitting a booking session.
type BookingConfirmation struct {
	Success            bool              `json:"success"`
	ConfirmationNumber string            `json:"confirmationNumber,omitempty"`
	TotalPrice         float64           `json:"totalPrice,omitempty"`
	Errors             map[string]string `json:"errors,omitempty"`
	Error              string            `json:"error,omitempty"`
}
