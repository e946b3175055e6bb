package models

// ConsultationType represents a bookable consultation offering.
type ConsultationType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"` // in minutes
	Price       float64  `json:"price"`    // base price in currency units
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular,omitempty"`
}
