package models

// BusinessHours defines a location's opening window for one weekday.
// Weekday follows time.Weekday numbering (0 = Sunday .. 6 = Saturday).
// At most one entry per weekday value.
type BusinessHours struct {
	Weekday int    `json:"weekday"`
	Open    string `json:"open"`  // "HH:MM", e.g. "10:00"
	Close   string `json:"close"` // "HH:MM", e.g. "18:00"
	Closed  bool   `json:"closed,omitempty"`
}

// GeoPoint holds optional store coordinates.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location represents a physical boutique where consultations take place.
type Location struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	City     string          `json:"city"`
	Phone    string          `json:"phone"`
	Email    string          `json:"email"`
	Timezone string          `json:"timezone"` // IANA name, e.g. "America/New_York"
	Geo      *GeoPoint       `json:"geo,omitempty"`
	Hours    []BusinessHours `json:"hours"`
}

// HoursFor returns the business hours entry for the given weekday, if any.
func (l Location) HoursFor(weekday int) (BusinessHours, bool) {
	for _, h := range l.Hours {
		if h.Weekday == weekday {
			return h, true
		}
	}
	return BusinessHours{}, false
}
