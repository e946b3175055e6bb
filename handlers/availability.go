package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAvailability handles GET /api/availability/days/:locationID.
// Unknown locations answer an empty window, not an error.
func (h *HandlerBundle) GetAvailability(c *gin.Context) {
	locationID := c.Param("locationID")
	days := h.Engine.GenerateAvailability(locationID)
	c.JSON(http.StatusOK, gin.H{
		"locationId": locationID,
		"days":       days,
	})
}

// GetAvailableTimeSlots handles GET /api/availability/slots/:locationID/:date,
// returning only the open slots for that day.
func (h *HandlerBundle) GetAvailableTimeSlots(c *gin.Context) {
	locationID := c.Param("locationID")
	date := c.Param("date")
	slots := h.Engine.AvailableTimeSlots(locationID, date)
	c.JSON(http.StatusOK, gin.H{
		"locationId": locationID,
		"date":       date,
		"timeSlots":  slots,
	})
}

// GetNextAvailableSlot handles GET /api/availability/next/:locationID.
// "next" is null when the whole window is booked out.
func (h *HandlerBundle) GetNextAvailableSlot(c *gin.Context) {
	locationID := c.Param("locationID")
	next := h.Engine.NextAvailableSlot(locationID)
	c.JSON(http.StatusOK, gin.H{
		"locationId": locationID,
		"next":       next,
	})
}
