// File: maison/handlers/bundle.go
package handlers

import (
	"errors"
	"net/http"

	"maison/services/booking"
	"maison/services/cart"

	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers and their dependencies.
type HandlerBundle struct {
	BookingSvc booking.BookingSessionService
	CartSvc    cart.CartService
	Engine     *booking.AvailabilityEngine
	Logger     *zap.Logger
}

// sessionErrStatus maps a booking session error to an HTTP status.
func sessionErrStatus(err error) int {
	var sErr *booking.SessionError
	if errors.As(err, &sErr) {
		switch sErr.Code {
		case booking.CodeSessionNotFound:
			return http.StatusNotFound
		case booking.CodeSlotUnavailable:
			return http.StatusConflict
		case booking.CodeUnknownSelection:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
