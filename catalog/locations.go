// Package catalog holds the static boutique registry, the consultation
// offerings, and the holiday calendar. The data is fixture data: there is
// no backing store, and lookups are pure functions over these slices.
package catalog

import "maison/models"

// PremiumLocationID designates the boutique that carries the 10%
// appointment surcharge.
const PremiumLocationID = "southampton"

var locations = []models.Location{
	{
		ID:       "manhattan",
		Name:     "Maison Flagship — Madison Avenue",
		Address:  "712 Madison Avenue",
		City:     "New York, NY 10065",
		Phone:    "+1 (212) 555-0148",
		Email:    "madison@maison.example",
		Timezone: "America/New_York",
		Geo:      &models.GeoPoint{Latitude: 40.7664, Longitude: -73.9690},
		Hours: []models.BusinessHours{
			{Weekday: 0, Closed: true},
			{Weekday: 1, Open: "10:00", Close: "18:00"},
			{Weekday: 2, Open: "10:00", Close: "18:00"},
			{Weekday: 3, Open: "10:00", Close: "18:00"},
			{Weekday: 4, Open: "10:00", Close: "19:00"},
			{Weekday: 5, Open: "10:00", Close: "18:00"},
			{Weekday: 6, Open: "11:00", Close: "17:00"},
		},
	},
	{
		ID:       "southampton",
		Name:     "Maison Southampton",
		Address:  "48 Jobs Lane",
		City:     "Southampton, NY 11968",
		Phone:    "+1 (631) 555-0192",
		Email:    "southampton@maison.example",
		Timezone: "America/New_York",
		Geo:      &models.GeoPoint{Latitude: 40.8843, Longitude: -72.3895},
		Hours: []models.BusinessHours{
			{Weekday: 0, Closed: true},
			{Weekday: 1, Closed: true},
			{Weekday: 2, Open: "10:00", Close: "17:00"},
			{Weekday: 3, Open: "10:00", Close: "17:00"},
			{Weekday: 4, Open: "10:00", Close: "17:00"},
			{Weekday: 5, Open: "10:00", Close: "17:00"},
			{Weekday: 6, Open: "10:00", Close: "16:00"},
		},
	},
}

// Locations returns all boutiques in display order.
func Locations() []models.Location {
	out := make([]models.Location, len(locations))
	copy(out, locations)
	return out
}

// LocationByID looks up a boutique by id.
func LocationByID(id string) (models.Location, bool) {
	for _, loc := range locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return models.Location{}, false
}
