package booking

import (
	"testing"
	"time"

	"maison/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow pins generation to a known date so window contents are stable.
// 2026-06-20 is a Saturday; the window starts Sunday 2026-06-21.
func fixedNow() time.Time {
	return time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)
}

func testEngine(occupancy float64) *AvailabilityEngine {
	return &AvailabilityEngine{
		WindowDays:    60,
		OccupancyRate: occupancy,
		BaseSeed:      42,
		Now:           fixedNow,
	}
}

func dayFor(t *testing.T, days []models.AvailableDay, date string) models.AvailableDay {
	t.Helper()
	for _, d := range days {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("date %s not found in window", date)
	return models.AvailableDay{}
}

func TestGenerateAvailability_SlotTiling(t *testing.T) {
	engine := testEngine(0)

	days := engine.GenerateAvailability("manhattan")
	require.NotEmpty(t, days)

	// 2026-06-22 is a Monday: 10:00-18:00 tiles into 16 half-hour slots.
	monday := dayFor(t, days, "2026-06-22")
	require.Len(t, monday.TimeSlots, 16)
	assert.Equal(t, "10:00", monday.TimeSlots[0].StartTime)
	assert.Equal(t, "10:30", monday.TimeSlots[0].EndTime)
	assert.Equal(t, "17:30", monday.TimeSlots[15].StartTime)
	assert.Equal(t, "18:00", monday.TimeSlots[15].EndTime)

	// Contiguous, non-overlapping, sequential ids.
	for i := 1; i < len(monday.TimeSlots); i++ {
		assert.Equal(t, monday.TimeSlots[i-1].EndTime, monday.TimeSlots[i].StartTime)
	}
	assert.Equal(t, "slot-1", monday.TimeSlots[0].ID)
	assert.Equal(t, "slot-16", monday.TimeSlots[15].ID)

	// Zero occupancy leaves every slot open.
	for _, slot := range monday.TimeSlots {
		assert.True(t, slot.Available)
	}
}

func TestGenerateAvailability_WindowOrderingAndClosedDays(t *testing.T) {
	engine := testEngine(0)

	days := engine.GenerateAvailability("manhattan")
	require.NotEmpty(t, days)

	for i := 1; i < len(days); i++ {
		assert.Less(t, days[i-1].Date, days[i].Date, "days must ascend by date")
	}

	// Manhattan is closed Sundays; closed days never appear.
	for _, d := range days {
		parsed, err := time.Parse("2006-01-02", d.Date)
		require.NoError(t, err)
		assert.NotEqual(t, time.Sunday, parsed.Weekday(), "closed weekday leaked into window: %s", d.Date)
	}

	// Southampton is additionally closed Mondays.
	for _, d := range engine.GenerateAvailability("southampton") {
		parsed, err := time.Parse("2006-01-02", d.Date)
		require.NoError(t, err)
		assert.NotEqual(t, time.Monday, parsed.Weekday())
		assert.NotEqual(t, time.Sunday, parsed.Weekday())
	}
}

func TestGenerateAvailability_Holiday(t *testing.T) {
	engine := testEngine(0)

	// 2026-07-04 is a Saturday (open hours exist) and a fixed holiday:
	// the day is emitted with the holiday flag and no slots.
	days := engine.GenerateAvailability("manhattan")
	holiday := dayFor(t, days, "2026-07-04")
	assert.True(t, holiday.IsHoliday)
	assert.Empty(t, holiday.TimeSlots)
	assert.Equal(t, HolidayNote, holiday.SpecialNote)
}

func TestGenerateAvailability_UnknownLocation(t *testing.T) {
	engine := testEngine(0)
	assert.Empty(t, engine.GenerateAvailability("monaco"))
}

func TestGenerateAvailability_WindowLength(t *testing.T) {
	engine := testEngine(0)
	days := engine.GenerateAvailability("manhattan")

	// 60 calendar days minus closed Sundays; never more than the window.
	assert.LessOrEqual(t, len(days), 60)
	assert.Greater(t, len(days), 45)

	first, err := time.Parse("2006-01-02", days[0].Date)
	require.NoError(t, err)
	assert.True(t, first.After(fixedNow().AddDate(0, 0, 0)), "window starts after now")
}

func TestGenerateAvailability_OccupancyDeterministicPerEngine(t *testing.T) {
	engine := testEngine(0.15)

	first := engine.GenerateAvailability("manhattan")
	second := engine.GenerateAvailability("manhattan")
	require.Equal(t, first, second, "same engine must reproduce identical occupancy")

	// Full occupancy closes everything.
	booked := testEngine(1.0)
	for _, d := range booked.GenerateAvailability("manhattan") {
		for _, slot := range d.TimeSlots {
			assert.False(t, slot.Available)
		}
	}
}

func TestParseClock(t *testing.T) {
	m, err := parseClock("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = parseClock("25:00")
	assert.Error(t, err)
	_, err = parseClock("bogus")
	assert.Error(t, err)

	assert.Equal(t, "09:05", formatClock(545))
}
