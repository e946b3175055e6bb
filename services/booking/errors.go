package booking

import "fmt"

// Session error codes.
const (
	CodeSessionNotFound  = "sessionNotFound"
	CodeUnknownSelection = "unknownSelection"
	CodeSlotUnavailable  = "slotUnavailable"
)

// SessionError is a recoverable booking-session failure.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionError(code, msg string) error {
	return &SessionError{Code: code, Message: msg}
}

// ErrSlotTaken is surfaced when a selected slot is no longer open at
// selection time; the client must re-select.
var ErrSlotTaken = NewSessionError(CodeSlotUnavailable, "this time slot is no longer available, please choose another")
