// File: services/availability/engine.go
package availability

import (
	"fmt"
	"time"

	"miagenda/models"
)

// maxPitchMinutes caps the step between candidate slot starts: slots are never
// offered coarser than every 30 minutes, but services shorter than that step
// at their own duration so slots pack tightly.
const maxPitchMinutes = 30

// Config is the resolved scheduling configuration for one availability query:
// the professional's working window plus the effective duration and buffer
// (service override or professional default).
type Config struct {
	WorkStartHour   int
	WorkEndHour     int
	DurationMinutes int
	BufferMinutes   int
}

// Validate rejects configurations the generator must never see.
func (c Config) Validate() error {
	if c.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be positive, got %d", c.DurationMinutes)
	}
	if c.BufferMinutes < 0 {
		return fmt.Errorf("buffer must not be negative, got %d", c.BufferMinutes)
	}
	if c.WorkStartHour < 0 || c.WorkEndHour > 23 || c.WorkEndHour <= c.WorkStartHour {
		return fmt.Errorf("invalid working hours %02d:00-%02d:00", c.WorkStartHour, c.WorkEndHour)
	}
	return nil
}

// Pitch is the step in minutes between candidate slot starts.
func (c Config) Pitch() int {
	if c.DurationMinutes < maxPitchMinutes {
		return c.DurationMinutes
	}
	return maxPitchMinutes
}

// Footprint is the total minutes a booked slot occupies, trailing buffer
// included.
func (c Config) Footprint() int {
	return c.DurationMinutes + c.BufferMinutes
}

// BusyInterval is an occupied [Start, End) range on a professional's calendar.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Containment either way and partial overlap are all
// covered by the single test.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// BusyFromAppointments converts a day's appointments into busy intervals,
// dropping completed and cancelled ones, which never block a slot.
func BusyFromAppointments(appts []models.Appointment) []BusyInterval {
	var busy []BusyInterval
	for _, a := range appts {
		if !a.IsActive() {
			continue
		}
		end := a.End
		if end.IsZero() {
			end = a.Start.Add(time.Duration(a.DurationMinutes) * time.Minute)
		}
		busy = append(busy, BusyInterval{Start: a.Start, End: end})
	}
	return busy
}

// DaySlots generates the ordered free slots of one calendar day. Candidates
// start at the working window's opening hour and advance by the pitch; a
// candidate survives when its full footprint fits inside the window and does
// not overlap any busy interval. The input is never mutated and the result is
// deterministic for a fixed busy snapshot.
func DaySlots(day time.Time, cfg Config, busy []BusyInterval) []models.Slot {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	pitch := cfg.Pitch()
	footprint := cfg.Footprint()
	windowEnd := cfg.WorkEndHour * 60

	var slots []models.Slot
	for offset := cfg.WorkStartHour * 60; offset+footprint <= windowEnd; offset += pitch {
		start := midnight.Add(time.Duration(offset) * time.Minute)
		end := start.Add(time.Duration(footprint) * time.Minute)

		if overlapsAny(start, end, busy) {
			continue
		}
		slots = append(slots, models.Slot{
			Start:           start,
			TimeOfDay:       start.Format("15:04"),
			Available:       true,
			DurationMinutes: cfg.DurationMinutes,
			BufferMinutes:   cfg.BufferMinutes,
		})
	}
	return slots
}

func overlapsAny(start, end time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// WeekSlots runs the day generator over a fixed forward window of days
// starting at from, labelling each day with its weekday name. busyByDate is
// keyed by "2006-01-02" in from's location.
func WeekSlots(from time.Time, days int, cfg Config, busyByDate map[string][]BusyInterval) []models.DaySlots {
	result := make([]models.DaySlots, 0, days)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		dateStr := day.Format("2006-01-02")
		result = append(result, models.DaySlots{
			Date:    dateStr,
			Weekday: day.Weekday().String(),
			Slots:   DaySlots(day, cfg, busyByDate[dateStr]),
		})
	}
	return result
}
