package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"maison/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(occupancy float64) *DefaultBookingSessionService {
	return NewBookingSessionService(testEngine(occupancy), 0, 30*time.Minute)
}

func TestCreateSession_Defaults(t *testing.T) {
	svc := testService(0)
	view := svc.CreateSession()

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, models.StepConsultation, view.Step)
	assert.Equal(t, models.BookingFormData{}, view.FormData)
	assert.Empty(t, view.Availability)
	assert.Zero(t, view.TotalPrice)
	assert.False(t, view.StepValid)
}

func TestSelectConsultationType(t *testing.T) {
	svc := testService(0)
	sess := svc.CreateSession()

	view, err := svc.SelectConsultationType(sess.SessionID, "bespoke-design")
	require.NoError(t, err)
	assert.Equal(t, "bespoke-design", view.FormData.ConsultationType)
	require.NotNil(t, view.SelectedConsultation)
	assert.Equal(t, "Bespoke Design Consultation", view.SelectedConsultation.Name)
	assert.InDelta(t, 250, view.TotalPrice, 1e-9)
	assert.True(t, view.StepValid)

	_, err = svc.SelectConsultationType(sess.SessionID, "palm-reading")
	require.Error(t, err)
	var sErr *SessionError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, CodeUnknownSelection, sErr.Code)
}

func TestSelectLocation_RefreshesAvailabilityAndClearsDate(t *testing.T) {
	svc := testService(0)
	sess := svc.CreateSession()

	view, err := svc.SelectLocation(sess.SessionID, "southampton")
	require.NoError(t, err)
	require.NotEmpty(t, view.Availability)

	// Pick a Tuesday in the window, then a slot.
	view, err = svc.SelectDate(sess.SessionID, "2026-06-23")
	require.NoError(t, err)
	view, err = svc.SelectTimeSlot(sess.SessionID, "slot-1")
	require.NoError(t, err)
	assert.Equal(t, "slot-1", view.FormData.TimeSlot)

	// Re-selecting a location invalidates the stale date and slot ids.
	view, err = svc.SelectLocation(sess.SessionID, "manhattan")
	require.NoError(t, err)
	assert.Empty(t, view.FormData.Date)
	assert.Empty(t, view.FormData.TimeSlot)
	assert.Nil(t, view.SelectedDay)
	assert.Nil(t, view.SelectedSlot)
}

func TestSelectDate_ClearsSlotAndRejectsClosedDays(t *testing.T) {
	svc := testService(0)
	sess := svc.CreateSession()

	_, err := svc.SelectDate(sess.SessionID, "2026-06-23")
	require.Error(t, err, "date selection requires a location first")

	_, err = svc.SelectLocation(sess.SessionID, "southampton")
	require.NoError(t, err)

	_, err = svc.SelectDate(sess.SessionID, "2026-06-22")
	require.Error(t, err, "southampton is closed Mondays")

	view, err := svc.SelectDate(sess.SessionID, "2026-06-23")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-23", view.FormData.Date)

	_, err = svc.SelectTimeSlot(sess.SessionID, "slot-2")
	require.NoError(t, err)

	view, err = svc.SelectDate(sess.SessionID, "2026-06-24")
	require.NoError(t, err)
	assert.Empty(t, view.FormData.TimeSlot, "changing the date must drop the slot")
}

func TestSelectTimeSlot_RejectsTakenSlot(t *testing.T) {
	svc := testService(1.0) // everything pre-booked
	sess := svc.CreateSession()

	_, err := svc.SelectLocation(sess.SessionID, "manhattan")
	require.NoError(t, err)
	_, err = svc.SelectDate(sess.SessionID, "2026-06-22")
	require.NoError(t, err)

	_, err = svc.SelectTimeSlot(sess.SessionID, "slot-1")
	require.ErrorIs(t, err, ErrSlotTaken)

	view, err := svc.GetSession(sess.SessionID)
	require.NoError(t, err)
	assert.Empty(t, view.FormData.TimeSlot, "rejected selection must not commit")
	assert.NotEmpty(t, view.Error)
}

func TestStepTransitions_Clamped(t *testing.T) {
	svc := testService(0)
	sess := svc.CreateSession()

	for i := 0; i < 10; i++ {
		view, err := svc.NextStep(sess.SessionID)
		require.NoError(t, err)
		assert.LessOrEqual(t, view.Step, models.StepReview)
	}
	view, _ := svc.GetSession(sess.SessionID)
	assert.Equal(t, models.StepReview, view.Step)

	for i := 0; i < 10; i++ {
		view, err := svc.PrevStep(sess.SessionID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, view.Step, models.StepConsultation)
	}

	view, err := svc.GoToStep(sess.SessionID, 99)
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, view.Step)
	view, err = svc.GoToStep(sess.SessionID, -3)
	require.NoError(t, err)
	assert.Equal(t, models.StepConsultation, view.Step)
}

func TestStepGating_RoundTripKeepsSelections(t *testing.T) {
	svc := testService(0)
	sess := svc.CreateSession()

	_, err := svc.SelectConsultationType(sess.SessionID, "sizing")
	require.NoError(t, err)
	_, err = svc.SelectLocation(sess.SessionID, "manhattan")
	require.NoError(t, err)

	// Wander past incomplete steps and back.
	_, err = svc.GoToStep(sess.SessionID, models.StepReview)
	require.NoError(t, err)
	_, err = svc.GoToStep(sess.SessionID, models.StepConsultation)
	require.NoError(t, err)

	view, err := svc.GetSession(sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "sizing", view.FormData.ConsultationType)
	assert.Equal(t, "manhattan", view.FormData.Location)
	assert.True(t, view.StepValid)
}

func TestSubmit_ValidationFailureLeavesState(t *testing.T) {
	svc := testService(0)
	sess := svc.CreateSession()

	_, err := svc.SelectConsultationType(sess.SessionID, "appraisal")
	require.NoError(t, err)
	_, err = svc.GoToStep(sess.SessionID, models.StepContact)
	require.NoError(t, err)

	confirmation, err := svc.Submit(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.False(t, confirmation.Success)
	assert.Contains(t, confirmation.Errors, "firstName")
	assert.Contains(t, confirmation.Errors, "email")

	view, err := svc.GetSession(sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepContact, view.Step, "failed submit must not advance or reset")
	assert.Equal(t, "appraisal", view.FormData.ConsultationType)
	assert.False(t, view.Validation.IsValid)
}

func TestSubmit_EndToEnd(t *testing.T) {
	svc := testService(0)
	sess := svc.CreateSession()
	id := sess.SessionID

	_, err := svc.SelectConsultationType(id, "appraisal")
	require.NoError(t, err)
	_, err = svc.SelectLocation(id, "southampton")
	require.NoError(t, err)

	view, err := svc.GetSession(id)
	require.NoError(t, err)
	require.NotEmpty(t, view.Availability)

	// First non-holiday day with at least one open slot.
	var date, slotID string
	for _, day := range view.Availability {
		if day.IsHoliday {
			continue
		}
		for _, slot := range day.TimeSlots {
			if slot.Available {
				date, slotID = day.Date, slot.ID
				break
			}
		}
		if date != "" {
			break
		}
	}
	require.NotEmpty(t, date)

	_, err = svc.SelectDate(id, date)
	require.NoError(t, err)
	_, err = svc.SelectTimeSlot(id, slotID)
	require.NoError(t, err)

	view, err = svc.UpdateContact(id, ContactUpdate{
		FirstName:         "Claire",
		LastName:          "Beaumont",
		Email:             "claire@example.com",
		Phone:             "+1 212 555 0101",
		CommunicationType: models.CommunicationInPerson,
	})
	require.NoError(t, err)
	assert.True(t, view.Validation.IsValid)
	// Appraisal at the premium boutique: 150 * 1.10.
	assert.InDelta(t, 165, view.TotalPrice, 1e-9)

	confirmation, err := svc.Submit(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, confirmation.Success)
	assert.NotEmpty(t, confirmation.ConfirmationNumber)
	assert.True(t, strings.HasPrefix(confirmation.ConfirmationNumber, "LXC-"))
	assert.InDelta(t, 165, confirmation.TotalPrice, 1e-9)

	// Session is reset for the next booking.
	view, err = svc.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, models.StepConsultation, view.Step)
	assert.Equal(t, models.BookingFormData{}, view.FormData)
	assert.Empty(t, view.Availability)
	assert.Zero(t, view.TotalPrice)
}

func TestSubmit_ConfirmationNumbersUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n := newConfirmationNumber()
		require.NotEmpty(t, n)
		require.False(t, seen[n], "duplicate confirmation %s", n)
		seen[n] = true
	}
}

func TestCancelAndExpiry(t *testing.T) {
	svc := testService(0)
	sess := svc.CreateSession()

	require.NoError(t, svc.CancelSession(sess.SessionID))
	_, err := svc.GetSession(sess.SessionID)
	require.Error(t, err)
	require.Error(t, svc.CancelSession(sess.SessionID))

	// Idle sessions are swept once past the TTL.
	svc = testService(0)
	sess = svc.CreateSession()
	svc.mu.Lock()
	svc.sessions[sess.SessionID].UpdatedAt = time.Now().Add(-time.Hour)
	svc.mu.Unlock()
	svc.sweep()
	_, err = svc.GetSession(sess.SessionID)
	require.Error(t, err)
}

func TestUpdateContact_ClearsFrequencyWhenNotRecurring(t *testing.T) {
	svc := testService(0)
	sess := svc.CreateSession()

	view, err := svc.UpdateContact(sess.SessionID, ContactUpdate{
		FirstName:          "Claire",
		LastName:           "Beaumont",
		Email:              "claire@example.com",
		Phone:              "2125550101",
		CommunicationType:  models.CommunicationVideo,
		Recurring:          false,
		RecurringFrequency: models.FrequencyWeekly,
	})
	require.NoError(t, err)
	assert.Empty(t, view.FormData.RecurringFrequency)
	assert.True(t, view.Validation.IsValid)
}
