// File: barberbook/services/booking/slots.go
package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"barberbook/config"
	"barberbook/models"
)

// Schedule defaults applied when configuration is not loaded (tests).
const (
	defaultOpenTime     = "09:00"
	defaultCloseTime    = "18:30"
	defaultIntervalMins = 30
	defaultLeadMins     = 30
)

// SlotAPI is the slice of the backend client the resolver needs.
type SlotAPI interface {
	TimeSlotsStatus(ctx context.Context, barberID, date string) ([]models.TimeSlotStatus, error)
}

// DefaultSlotResolver produces the authoritative slot-status set for a
// (barber, date) pair. For a specific barber it delegates to the backend,
// which accounts for existing bookings. For the "any barber" sentinel it
// synthesizes the shop's fixed daily schedule locally.
type DefaultSlotResolver struct {
	API SlotAPI
	// Now is the clock; tests replace it.
	Now func() time.Time
}

func (r *DefaultSlotResolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Lead is the minimum interval before a slot that keeps it selectable on
// the current day.
func (r *DefaultSlotResolver) Lead() time.Duration {
	mins := config.AppConfig.SlotLeadMinutes
	if mins <= 0 {
		mins = defaultLeadMins
	}
	return time.Duration(mins) * time.Minute
}

func scheduleBounds() (open, close string, interval time.Duration) {
	open = config.AppConfig.OpenTime
	if open == "" {
		open = defaultOpenTime
	}
	close = config.AppConfig.CloseTime
	if close == "" {
		close = defaultCloseTime
	}
	mins := config.AppConfig.SlotIntervalMinutes
	if mins <= 0 {
		mins = defaultIntervalMins
	}
	return open, close, time.Duration(mins) * time.Minute
}

// Resolve returns the ordered slot-status set for the pair.
func (r *DefaultSlotResolver) Resolve(ctx context.Context, barberID, date string) ([]models.TimeSlotStatus, error) {
	if barberID == "" || barberID == models.AnyBarberID {
		return r.Synthesize(date)
	}
	slots, err := r.API.TimeSlotsStatus(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })
	return slots, nil
}

// Synthesize builds the fixed daily schedule for the "any barber" path.
// On the current calendar day, slots starting at or before now plus the
// lead time are past and unavailable; on future dates every slot is
// available.
func (r *DefaultSlotResolver) Synthesize(date string) ([]models.TimeSlotStatus, error) {
	day, err := time.ParseInLocation("2006-01-02", date, r.now().Location())
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid date %q", date))
	}

	open, close, interval := scheduleBounds()
	openClock, err := time.Parse("15:04", open)
	if err != nil {
		return nil, fmt.Errorf("invalid opening time %q: %w", open, err)
	}
	closeClock, err := time.Parse("15:04", close)
	if err != nil {
		return nil, fmt.Errorf("invalid closing time %q: %w", close, err)
	}

	now := r.now()
	today := now.Format("2006-01-02")
	cutoff := now.Add(r.Lead())

	var slots []models.TimeSlotStatus
	start := time.Date(day.Year(), day.Month(), day.Day(),
		openClock.Hour(), openClock.Minute(), 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(),
		closeClock.Hour(), closeClock.Minute(), 0, 0, day.Location())
	for t := start; !t.After(end); t = t.Add(interval) {
		slot := models.TimeSlotStatus{Time: t.Format("15:04"), IsAvailable: true}
		switch {
		case date < today:
			slot.IsPast = true
			slot.IsAvailable = false
		case date == today && !t.After(cutoff):
			slot.IsPast = true
			slot.IsAvailable = false
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// Fallback is the degraded set served when the backend cannot be reached:
// the synthesized schedule with every slot selectable. Submission is still
// validated server-side, so failing open here only affects display.
func (r *DefaultSlotResolver) Fallback(date string) []models.TimeSlotStatus {
	slots, err := r.Synthesize(date)
	if err != nil {
		return nil
	}
	for i := range slots {
		slots[i].IsPast = false
		slots[i].IsAvailable = true
	}
	return slots
}
