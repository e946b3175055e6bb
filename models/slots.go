package models

// TimeSlot is a half-hour appointment window on a given day.
// IDs are sequential within a single generation run and are not stable
// across runs or locations.
type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM", always start + 30min
	Available bool   `json:"available"`
}

// AvailableDay is one calendar day in a location's booking window.
// A holiday day carries no slots; days where the boutique is closed are
// omitted from the window entirely.
type AvailableDay struct {
	Date        string     `json:"date"` // "YYYY-MM-DD"
	TimeSlots   []TimeSlot `json:"timeSlots"`
	IsHoliday   bool       `json:"isHoliday"`
	SpecialNote string     `json:"specialNote,omitempty"`
}

// SlotRef pairs a day with one of its slots, used when scanning for the
// next open appointment.
type SlotRef struct {
	Date     string   `json:"date"`
	TimeSlot TimeSlot `json:"timeSlot"`
}
