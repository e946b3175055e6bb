package catalog

// Boutique closure dates. Fixed known dates, keyed "YYYY-MM-DD"; the
// availability engine treats any date in this set as a holiday.
var holidays = map[string]string{
	"2026-01-01": "New Year's Day",
	"2026-07-04": "Independence Day",
	"2026-11-26": "Thanksgiving",
	"2026-12-24": "Christmas Eve",
	"2026-12-25": "Christmas Day",
	"2026-12-31": "New Year's Eve",
	"2027-01-01": "New Year's Day",
	"2027-07-04": "Independence Day",
	"2027-11-25": "Thanksgiving",
	"2027-12-24": "Christmas Eve",
	"2027-12-25": "Christmas Day",
	"2027-12-31": "New Year's Eve",
}

// IsHoliday reports whether the given "YYYY-MM-DD" date is a boutique
// closure date.
func IsHoliday(date string) bool {
	_, ok := holidays[date]
	return ok
}

// HolidayName returns the name of the holiday on the given date, if any.
func HolidayName(date string) (string, bool) {
	name, ok := holidays[date]
	return name, ok
}
