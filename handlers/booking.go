package handlers

import (
	"net/http"

	"maison/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateBookingSession starts a new wizard session.
func (h *HandlerBundle) CreateBookingSession(c *gin.Context) {
	view := h.BookingSvc.CreateSession()
	c.JSON(http.StatusCreated, view)
}

// GetBookingSession returns the current session state.
func (h *HandlerBundle) GetBookingSession(c *gin.Context) {
	view, err := h.BookingSvc.GetSession(c.Param("sessionID"))
	if err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectConsultationType records the chosen offering on the session.
func (h *HandlerBundle) SelectConsultationType(c *gin.Context) {
	var body struct {
		ConsultationTypeID string `json:"consultationTypeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.BookingSvc.SelectConsultationType(c.Param("sessionID"), body.ConsultationTypeID)
	if err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectLocation records the chosen boutique and returns the refreshed
// availability window along with the session.
func (h *HandlerBundle) SelectLocation(c *gin.Context) {
	var body struct {
		LocationID string `json:"locationId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.BookingSvc.SelectLocation(c.Param("sessionID"), body.LocationID)
	if err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectDate records the chosen day.
func (h *HandlerBundle) SelectDate(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.BookingSvc.SelectDate(c.Param("sessionID"), body.Date)
	if err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectTimeSlot commits a slot selection after re-checking it is still
// open; a taken slot answers 409 so the client can re-select.
func (h *HandlerBundle) SelectTimeSlot(c *gin.Context) {
	var body struct {
		SlotID string `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.BookingSvc.SelectTimeSlot(c.Param("sessionID"), body.SlotID)
	if err != nil {
		h.Logger.Warn("slot selection rejected",
			zap.String("sessionID", c.Param("sessionID")),
			zap.String("slotID", body.SlotID),
			zap.Error(err))
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateContact replaces the contact-step fields.
func (h *HandlerBundle) UpdateContact(c *gin.Context) {
	var body booking.ContactUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.BookingSvc.UpdateContact(c.Param("sessionID"), body)
	if err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// NextStep advances the wizard.
func (h *HandlerBundle) NextStep(c *gin.Context) {
	view, err := h.BookingSvc.NextStep(c.Param("sessionID"))
	if err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// PrevStep moves the wizard back.
func (h *HandlerBundle) PrevStep(c *gin.Context) {
	view, err := h.BookingSvc.PrevStep(c.Param("sessionID"))
	if err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GoToStep jumps to a specific wizard step.
func (h *HandlerBundle) GoToStep(c *gin.Context) {
	var body struct {
		Step int `json:"step"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.BookingSvc.GoToStep(c.Param("sessionID"), body.Step)
	if err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitBooking runs the authoritative validation and finalizes the booking.
func (h *HandlerBundle) SubmitBooking(c *gin.Context) {
	confirmation, err := h.BookingSvc.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !confirmation.Success {
		c.JSON(http.StatusUnprocessableEntity, confirmation)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// ResetBookingSession returns the session to its initial state.
func (h *HandlerBundle) ResetBookingSession(c *gin.Context) {
	view, err := h.BookingSvc.ResetSession(c.Param("sessionID"))
	if err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelBookingSession discards the session.
func (h *HandlerBundle) CancelBookingSession(c *gin.Context) {
	if err := h.BookingSvc.CancelSession(c.Param("sessionID")); err != nil {
		c.JSON(sessionErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
