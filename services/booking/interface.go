package booking

import (
	"context"

	"maison/models"
)

// ContactUpdate carries the contact-step fields of the wizard form.
type ContactUpdate struct {
	FirstName          string                         `json:"firstName"`
	LastName           string                         `json:"lastName"`
	Email              string                         `json:"email"`
	Phone              string                         `json:"phone"`
	CommunicationType  string                         `json:"communicationType"`
	SpecialRequests    string                         `json:"specialRequests"`
	Recurring          bool                           `json:"recurring"`
	RecurringFrequency string                         `json:"recurringFrequency"`
	Notifications      models.NotificationPreferences `json:"notifications"`
}

// BookingSessionService manages a client's progress through the booking
// wizard: selections, step transitions, derived availability and price,
// and final submission.
type BookingSessionService interface {
	CreateSession() *models.BookingSessionView
	GetSession(sessionID string) (*models.BookingSessionView, error)

	SelectConsultationType(sessionID, consultationTypeID string) (*models.BookingSessionView, error)
	SelectLocation(sessionID, locationID string) (*models.BookingSessionView, error)
	SelectDate(sessionID, date string) (*models.BookingSessionView, error)
	SelectTimeSlot(sessionID, slotID string) (*models.BookingSessionView, error)
	UpdateContact(sessionID string, update ContactUpdate) (*models.BookingSessionView, error)

	NextStep(sessionID string) (*models.BookingSessionView, error)
	PrevStep(sessionID string) (*models.BookingSessionView, error)
	GoToStep(sessionID string, step int) (*models.BookingSessionView, error)

	Submit(ctx context.Context, sessionID string) (*models.BookingConfirmation, error)
	ResetSession(sessionID string) (*models.BookingSessionView, error)
	CancelSession(sessionID string) error
}
