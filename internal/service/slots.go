package service

import (
	"fmt"
	"time"

	"turnero/internal/db"
	"turnero/internal/entities"
	"turnero/internal/utils"
)

const (
	// slotWidthMinutes is the fixed width of a bookable slot.
	slotWidthMinutes = 15
	// holdMinutes is how long an unconfirmed reservation blocks its slot.
	holdMinutes = 30
	// minAdvanceHours is the booking advance-notice rule.
	minAdvanceHours = 24
)

// buildAvailableSlots expands the provider's windows for one date into the
// ordered sequence of bookable slots, dropping reserved and past ones.
//
// Windows expand independently: overlapping windows emit the same
// wall-clock slot more than once, and callers needing deduplication must
// do it themselves. A trailing partial slot (window length not a multiple
// of the slot width) is never emitted, and inverted or zero-length windows
// simply contribute nothing.
func buildAvailableSlots(windows []db.Availability, reservations []db.Reservation, now time.Time) []entities.AvailableSlot {
	reserved := make(map[string]bool, len(reservations))
	for _, res := range reservations {
		if res.Confirmed || now.Before(res.CreatedAt.Add(holdMinutes*time.Minute)) {
			reserved[res.TimeSlot] = true
		}
	}

	slots := []entities.AvailableSlot{}
	counter := 1
	for _, w := range windows {
		start, err := utils.TimeToMinutes(w.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.TimeToMinutes(w.EndTime)
		if err != nil {
			continue
		}
		for t := start; t+slotWidthMinutes <= end; t += slotWidthMinutes {
			slotStart := utils.MinutesToTime(t)
			if reserved[slotStart] {
				continue
			}
			if !utils.IsFuture(w.Date, slotStart, now) {
				continue
			}
			slots = append(slots, entities.AvailableSlot{
				Label: fmt.Sprintf("slot%d", counter),
				Slot:  slotStart + "-" + utils.MinutesToTime(t+slotWidthMinutes),
			})
			counter++
		}
	}
	return slots
}
