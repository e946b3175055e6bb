package booking

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"maison/catalog"
	"maison/models"
	"maison/utils"

	"go.uber.org/zap"
)

// SlotMinutes is the fixed appointment granularity.
const SlotMinutes = 30

// HolidayNote is the note set on emitted holiday days.
const HolidayNote = "Closed for holiday"

// AvailabilityEngine produces the forward booking window for a boutique.
//
// Occupancy simulation: roughly OccupancyRate of generated slots are marked
// unavailable, standing in for pre-existing bookings. The RNG for a given
// (location, date) is seeded from BaseSeed, so regenerating the same day
// within one engine lifetime yields identical occupancy, while engines
// constructed with different seeds (one per server start) differ.
type AvailabilityEngine struct {
	WindowDays    int
	OccupancyRate float64
	BaseSeed      int64
	Now           func() time.Time // overridable in tests; defaults to time.Now
}

// NewAvailabilityEngine returns an engine with a randomized base seed.
func NewAvailabilityEngine(windowDays int, occupancyRate float64) *AvailabilityEngine {
	return &AvailabilityEngine{
		WindowDays:    windowDays,
		OccupancyRate: occupancyRate,
		BaseSeed:      time.Now().UnixNano(),
	}
}

func (e *AvailabilityEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// GenerateAvailability returns the next WindowDays of bookable days for the
// given boutique, starting tomorrow in the boutique's timezone. Days where
// the boutique is closed (no hours entry, or hours marked closed) are
// omitted; holidays with otherwise open hours are emitted with no slots.
// Output is ordered by date, and by start time within a day. An unknown
// location id yields an empty window.
func (e *AvailabilityEngine) GenerateAvailability(locationID string) []models.AvailableDay {
	logger := utils.GetLogger()

	loc, ok := catalog.LocationByID(locationID)
	if !ok {
		logger.Warn("GenerateAvailability: unknown location", zap.String("locationID", locationID))
		return nil
	}

	tz, err := time.LoadLocation(loc.Timezone)
	if err != nil {
		logger.Warn("GenerateAvailability: bad timezone, falling back to UTC",
			zap.String("locationID", loc.ID), zap.String("timezone", loc.Timezone), zap.Error(err))
		tz = time.UTC
	}

	now := e.now().In(tz)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, tz).AddDate(0, 0, 1)

	days := make([]models.AvailableDay, 0, e.WindowDays)
	for i := 0; i < e.WindowDays; i++ {
		d := start.AddDate(0, 0, i)
		dateStr := d.Format("2006-01-02")

		hours, ok := loc.HoursFor(int(d.Weekday()))
		if !ok || hours.Closed {
			continue
		}

		if catalog.IsHoliday(dateStr) {
			days = append(days, models.AvailableDay{
				Date:        dateStr,
				TimeSlots:   []models.TimeSlot{},
				IsHoliday:   true,
				SpecialNote: HolidayNote,
			})
			continue
		}

		days = append(days, models.AvailableDay{
			Date:      dateStr,
			TimeSlots: e.buildSlots(loc.ID, dateStr, hours),
		})
	}
	return days
}

// buildSlots tiles [open, close) with half-hour slots. A remainder shorter
// than a full slot is dropped, so the last slot never crosses closing time.
func (e *AvailabilityEngine) buildSlots(locationID, date string, hours models.BusinessHours) []models.TimeSlot {
	open, errOpen := parseClock(hours.Open)
	closeAt, errClose := parseClock(hours.Close)
	if errOpen != nil || errClose != nil || closeAt <= open {
		return nil
	}

	rng := rand.New(rand.NewSource(e.daySeed(locationID, date)))

	var slots []models.TimeSlot
	seq := 0
	for t := open; t+SlotMinutes <= closeAt; t += SlotMinutes {
		seq++
		slots = append(slots, models.TimeSlot{
			ID:        fmt.Sprintf("slot-%d", seq),
			StartTime: formatClock(t),
			EndTime:   formatClock(t + SlotMinutes),
			Available: rng.Float64() >= e.OccupancyRate,
		})
	}
	return slots
}

// daySeed derives a stable per-(location, date) RNG seed from the engine's
// base seed.
func (e *AvailabilityEngine) daySeed(locationID, date string) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s", e.BaseSeed, locationID, date)
	return int64(h.Sum64())
}

// parseClock converts "HH:MM" to minutes from midnight.
func parseClock(s string) (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return hh*60 + mm, nil
}

// formatClock converts minutes from midnight back to "HH:MM".
func formatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
