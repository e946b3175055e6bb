package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"maison/catalog"
	"maison/models"
	"maison/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingSessionService implements BookingSessionService over an
// in-process session store. Booking drafts are deliberately not persisted
// anywhere external; only the shopping cart survives outside the process.
type DefaultBookingSessionService struct {
	Engine      *AvailabilityEngine
	SubmitDelay time.Duration // simulated submission latency
	SessionTTL  time.Duration // idle sessions past this are swept; 0 disables

	mu       sync.RWMutex
	sessions map[string]*models.BookingSession
}

// NewBookingSessionService constructs the session service.
func NewBookingSessionService(engine *AvailabilityEngine, submitDelay, sessionTTL time.Duration) *DefaultBookingSessionService {
	return &DefaultBookingSessionService{
		Engine:      engine,
		SubmitDelay: submitDelay,
		SessionTTL:  sessionTTL,
		sessions:    make(map[string]*models.BookingSession),
	}
}

// CreateSession starts a new wizard session at step 0 with an empty form.
func (s *DefaultBookingSessionService) CreateSession() *models.BookingSessionView {
	sess := &models.BookingSession{
		SessionID:  uuid.New().String(),
		Step:       models.StepConsultation,
		Validation: models.BookingValidation{Errors: map[string]string{}},
		UpdatedAt:  time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.SessionID] = sess
	s.mu.Unlock()

	utils.GetLogger().Info("booking session created", zap.String("sessionID", sess.SessionID))
	return s.view(sess)
}

// GetSession returns the current session state.
func (s *DefaultBookingSessionService) GetSession(sessionID string) (*models.BookingSessionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, NewSessionError(CodeSessionNotFound, fmt.Sprintf("booking session %s not found or expired", sessionID))
	}
	return s.view(sess), nil
}

// SelectConsultationType records the chosen offering.
func (s *DefaultBookingSessionService) SelectConsultationType(sessionID, consultationTypeID string) (*models.BookingSessionView, error) {
	if _, ok := catalog.ConsultationTypeByID(consultationTypeID); !ok {
		return nil, NewSessionError(CodeUnknownSelection, fmt.Sprintf("unknown consultation type %q", consultationTypeID))
	}
	return s.mutate(sessionID, func(sess *models.BookingSession) error {
		sess.FormData.ConsultationType = consultationTypeID
		return nil
	})
}

// SelectLocation records the chosen boutique and refreshes the availability
// window for it. Any previously selected date and slot are cleared, since
// slot ids are scoped to a single generation run.
func (s *DefaultBookingSessionService) SelectLocation(sessionID, locationID string) (*models.BookingSessionView, error) {
	if _, ok := catalog.LocationByID(locationID); !ok {
		return nil, NewSessionError(CodeUnknownSelection, fmt.Sprintf("unknown location %q", locationID))
	}
	days := s.Engine.GenerateAvailability(locationID)
	return s.mutate(sessionID, func(sess *models.BookingSession) error {
		sess.FormData.Location = locationID
		sess.Availability = days
		sess.FormData.Date = ""
		sess.FormData.TimeSlot = ""
		return nil
	})
}

// SelectDate records the chosen day and clears the previously selected slot.
func (s *DefaultBookingSessionService) SelectDate(sessionID, date string) (*models.BookingSessionView, error) {
	return s.mutate(sessionID, func(sess *models.BookingSession) error {
		if sess.FormData.Location == "" {
			return NewSessionError(CodeUnknownSelection, "select a location before choosing a date")
		}
		if dayByDate(sess.Availability, date) == nil {
			return NewSessionError(CodeUnknownSelection, fmt.Sprintf("date %s is not available at this location", date))
		}
		sess.FormData.Date = date
		sess.FormData.TimeSlot = ""
		return nil
	})
}

// SelectTimeSlot re-checks the slot against freshly derived availability
// before committing, guarding against stale selections. A slot that is no
// longer open rejects the selection and surfaces a session error instead.
func (s *DefaultBookingSessionService) SelectTimeSlot(sessionID, slotID string) (*models.BookingSessionView, error) {
	return s.mutate(sessionID, func(sess *models.BookingSession) error {
		if sess.FormData.Location == "" || sess.FormData.Date == "" {
			return NewSessionError(CodeUnknownSelection, "select a location and date before choosing a time")
		}
		if !s.Engine.IsTimeSlotAvailable(sess.FormData.Location, sess.FormData.Date, slotID) {
			sess.Error = "This time slot is no longer available. Please choose another time."
			return ErrSlotTaken
		}
		sess.FormData.TimeSlot = slotID
		return nil
	})
}

// UpdateContact replaces the contact-step fields of the form.
func (s *DefaultBookingSessionService) UpdateContact(sessionID string, update ContactUpdate) (*models.BookingSessionView, error) {
	return s.mutate(sessionID, func(sess *models.BookingSession) error {
		form := &sess.FormData
		form.FirstName = update.FirstName
		form.LastName = update.LastName
		form.Email = update.Email
		form.Phone = update.Phone
		form.CommunicationType = update.CommunicationType
		form.SpecialRequests = update.SpecialRequests
		form.Recurring = update.Recurring
		form.RecurringFrequency = update.RecurringFrequency
		if !update.Recurring {
			form.RecurringFrequency = ""
		}
		form.Notifications = update.Notifications
		return nil
	})
}

// NextStep advances the wizard one step, clamped at the review step.
func (s *DefaultBookingSessionService) NextStep(sessionID string) (*models.BookingSessionView, error) {
	return s.mutate(sessionID, func(sess *models.BookingSession) error {
		sess.Step = clampStep(sess.Step + 1)
		return nil
	})
}

// PrevStep moves the wizard back one step, clamped at the first step.
func (s *DefaultBookingSessionService) PrevStep(sessionID string) (*models.BookingSessionView, error) {
	return s.mutate(sessionID, func(sess *models.BookingSession) error {
		sess.Step = clampStep(sess.Step - 1)
		return nil
	})
}

// GoToStep jumps directly to a step, clamped to the valid range. Step
// gating is advisory: the per-step validity predicate is exposed on the
// session view and honored by callers, not enforced here.
func (s *DefaultBookingSessionService) GoToStep(sessionID string, step int) (*models.BookingSessionView, error) {
	return s.mutate(sessionID, func(sess *models.BookingSession) error {
		sess.Step = clampStep(step)
		return nil
	})
}

// Submit runs the authoritative pre-submission checks, simulates the
// submission round-trip, and on success issues a confirmation number and
// resets the session to a fresh form at step 0. Validation failure leaves
// the session untouched apart from the surfaced errors.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, NewSessionError(CodeSessionNotFound, fmt.Sprintf("booking session %s not found or expired", sessionID))
	}

	validation := ValidateBookingForm(sess.FormData)
	sess.Validation = validation
	if !validation.IsValid {
		sess.UpdatedAt = time.Now()
		s.mu.Unlock()
		return &models.BookingConfirmation{Success: false, Errors: validation.Errors}, nil
	}

	form := sess.FormData
	ct, okCT := catalog.ConsultationTypeByID(form.ConsultationType)
	loc, okLoc := catalog.LocationByID(form.Location)
	if !okCT || !okLoc || form.Date == "" || form.TimeSlot == "" {
		sess.Error = "Please complete your consultation, location and time selections before confirming."
		sess.UpdatedAt = time.Now()
		s.mu.Unlock()
		return &models.BookingConfirmation{Success: false, Error: sess.Error}, nil
	}
	s.mu.Unlock()

	// Double-booking race check against freshly derived availability.
	if !s.Engine.IsTimeSlotAvailable(form.Location, form.Date, form.TimeSlot) {
		s.mu.Lock()
		sess.Error = "This time slot is no longer available. Please choose another time."
		sess.FormData.TimeSlot = ""
		sess.UpdatedAt = time.Now()
		s.mu.Unlock()
		return &models.BookingConfirmation{Success: false, Error: sess.Error}, nil
	}

	// Simulated network latency; abandoned submissions unblock via ctx.
	if s.SubmitDelay > 0 {
		select {
		case <-time.After(s.SubmitDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	total := CalculateBookingPrice(ct, loc, form.Recurring)
	confirmation := newConfirmationNumber()

	logger.Info("booking confirmed",
		zap.String("sessionID", sessionID),
		zap.String("confirmation", confirmation),
		zap.String("consultationType", ct.ID),
		zap.String("location", loc.ID),
		zap.String("date", form.Date),
		zap.String("slot", form.TimeSlot),
		zap.Float64("total", total))

	s.mu.Lock()
	resetSession(sess)
	s.mu.Unlock()

	return &models.BookingConfirmation{
		Success:            true,
		ConfirmationNumber: confirmation,
		TotalPrice:         total,
	}, nil
}

// ResetSession returns the session to its initial empty state at step 0.
func (s *DefaultBookingSessionService) ResetSession(sessionID string) (*models.BookingSessionView, error) {
	return s.mutateRaw(sessionID, func(sess *models.BookingSession) error {
		resetSession(sess)
		return nil
	})
}

// CancelSession discards the session entirely.
func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return NewSessionError(CodeSessionNotFound, fmt.Sprintf("booking session %s not found or expired", sessionID))
	}
	delete(s.sessions, sessionID)
	return nil
}

// StartJanitor sweeps idle sessions in the background until ctx is done.
func (s *DefaultBookingSessionService) StartJanitor(ctx context.Context, interval time.Duration) {
	if s.SessionTTL <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *DefaultBookingSessionService) sweep() {
	logger := utils.GetLogger()
	cutoff := time.Now().Add(-s.SessionTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			logger.Debug("expired booking session swept", zap.String("sessionID", id))
		}
	}
}

// mutate applies fn under the lock, then refreshes the derived validation
// and price. The session error message is cleared before fn runs so stale
// errors do not linger across mutations.
func (s *DefaultBookingSessionService) mutate(sessionID string, fn func(*models.BookingSession) error) (*models.BookingSessionView, error) {
	return s.mutateRaw(sessionID, func(sess *models.BookingSession) error {
		sess.Error = ""
		if err := fn(sess); err != nil {
			return err
		}
		sess.Validation = ValidateBookingForm(sess.FormData)
		return nil
	})
}

func (s *DefaultBookingSessionService) mutateRaw(sessionID string, fn func(*models.BookingSession) error) (*models.BookingSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, NewSessionError(CodeSessionNotFound, fmt.Sprintf("booking session %s not found or expired", sessionID))
	}
	if err := fn(sess); err != nil {
		sess.UpdatedAt = time.Now()
		return nil, err
	}
	s.refreshPrice(sess)
	sess.UpdatedAt = time.Now()
	return s.view(sess), nil
}

func (s *DefaultBookingSessionService) refreshPrice(sess *models.BookingSession) {
	ct, ok := catalog.ConsultationTypeByID(sess.FormData.ConsultationType)
	if !ok {
		sess.TotalPrice = 0
		return
	}
	loc, _ := catalog.LocationByID(sess.FormData.Location)
	sess.TotalPrice = CalculateBookingPrice(ct, loc, sess.FormData.Recurring)
}

// view assembles the denormalized session payload. Selected objects are
// recomputed from ids on every call rather than stored, so they can never
// diverge from the form data.
func (s *DefaultBookingSessionService) view(sess *models.BookingSession) *models.BookingSessionView {
	v := &models.BookingSessionView{BookingSession: *sess}

	if ct, ok := catalog.ConsultationTypeByID(sess.FormData.ConsultationType); ok {
		v.SelectedConsultation = &ct
	}
	if loc, ok := catalog.LocationByID(sess.FormData.Location); ok {
		v.SelectedLocation = &loc
	}
	if day := dayByDate(sess.Availability, sess.FormData.Date); day != nil {
		v.SelectedDay = day
		for i := range day.TimeSlots {
			if day.TimeSlots[i].ID == sess.FormData.TimeSlot {
				v.SelectedSlot = &day.TimeSlots[i]
				break
			}
		}
	}
	v.StepValid = StepValid(sess)
	return v
}

// StepValid reports whether the session's current step is complete enough
// for the caller to advance.
func StepValid(sess *models.BookingSession) bool {
	form := sess.FormData
	switch sess.Step {
	case models.StepConsultation:
		return form.ConsultationType != ""
	case models.StepLocation:
		return form.Location != ""
	case models.StepDateTime:
		return form.Date != "" && form.TimeSlot != ""
	case models.StepContact:
		return strings.TrimSpace(form.FirstName) != "" &&
			strings.TrimSpace(form.LastName) != "" &&
			strings.TrimSpace(form.Email) != "" &&
			strings.TrimSpace(form.Phone) != ""
	case models.StepReview:
		return ValidateBookingForm(form).IsValid
	}
	return false
}

func resetSession(sess *models.BookingSession) {
	sess.Step = models.StepConsultation
	sess.FormData = models.BookingFormData{}
	sess.Availability = nil
	sess.TotalPrice = 0
	sess.Loading = false
	sess.Error = ""
	sess.Validation = models.BookingValidation{Errors: map[string]string{}}
	sess.UpdatedAt = time.Now()
}

func clampStep(step int) int {
	if step < models.StepConsultation {
		return models.StepConsultation
	}
	if step > models.StepReview {
		return models.StepReview
	}
	return step
}

func dayByDate(days []models.AvailableDay, date string) *models.AvailableDay {
	if date == "" {
		return nil
	}
	for i := range days {
		if days[i].Date == date {
			return &days[i]
		}
	}
	return nil
}

// newConfirmationNumber builds a unique-looking confirmation reference.
func newConfirmationNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("LXC-%d-%s", time.Now().UnixMilli(), suffix)
}
