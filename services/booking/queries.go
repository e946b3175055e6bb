package booking

import "maison/models"

// IsTimeSlotAvailable reports whether the given slot is still open. The
// window is regenerated from the engine's seed, so the answer is consistent
// with what GenerateAvailability returned for this engine. Unknown
// location, date or slot all report false.
func (e *AvailabilityEngine) IsTimeSlotAvailable(locationID, date, slotID string) bool {
	for _, day := range e.GenerateAvailability(locationID) {
		if day.Date != date {
			continue
		}
		for _, slot := range day.TimeSlots {
			if slot.ID == slotID {
				return slot.Available
			}
		}
		return false
	}
	return false
}

// AvailableTimeSlots returns only the open slots for the given date, empty
// if the location or date is not in the window.
func (e *AvailabilityEngine) AvailableTimeSlots(locationID, date string) []models.TimeSlot {
	for _, day := range e.GenerateAvailability(locationID) {
		if day.Date != date {
			continue
		}
		var open []models.TimeSlot
		for _, slot := range day.TimeSlots {
			if slot.Available {
				open = append(open, slot)
			}
		}
		return open
	}
	return nil
}

// NextAvailableSlot scans the window in date order and returns the first
// open slot, or nil if the whole window is booked out.
func (e *AvailabilityEngine) NextAvailableSlot(locationID string) *models.SlotRef {
	for _, day := range e.GenerateAvailability(locationID) {
		for _, slot := range day.TimeSlots {
			if slot.Available {
				return &models.SlotRef{Date: day.Date, TimeSlot: slot}
			}
		}
	}
	return nil
}
