package models

import "time"

// Wizard step indexes. Transitions are linear and clamped to [StepConsultation, StepReview].
const (
	StepConsultation = 0
	StepLocation     = 1
	StepDateTime     = 2
	StepContact      = 3
	StepReview       = 4
)

// BookingSession holds one client's progress through the booking wizard.
type BookingSession struct {
	SessionID    string            `json:"sessionId"`
	Step         int               `json:"step"`
	FormData     BookingFormData   `json:"formData"`
	Availability []AvailableDay    `json:"availability,omitempty"`
	TotalPrice   float64           `json:"totalPrice"`
	Loading      bool              `json:"loading"`
	Error        string            `json:"error,omitempty"`
	Validation   BookingValidation `json:"validation"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// BookingSessionView is the session payload served to clients, with the
// selected catalog objects denormalized from the ids in FormData.
type BookingSessionView struct {
	BookingSession
	SelectedConsultation *ConsultationType `json:"selectedConsultation,omitempty"`
	SelectedLocation     *Location         `json:"selectedLocation,omitempty"`
	SelectedDay          *AvailableDay     `json:"selectedDay,omitempty"`
	SelectedSlot         *TimeSlot         `json:"selectedSlot,omitempty"`
	StepValid            bool              `json:"stepValid"`
}
