package service

import (
	"time"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
	"github.com/google/uuid"
)

// BuildCalendar turns sparse availability rows into the per-day
// display state for the window [start, start+days). A whole-day slot
// that is available suppresses morning and afternoon for that day at
// view time only; the underlying rows keep their stored values.
func BuildCalendar(start time.Time, days int, rows []model.Availability) []dto.DayAvailability {
	start = dateOnly(start)

	states := make(map[string]*dto.SlotStates, days)
	order := make([]string, 0, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format(dateLayout)
		states[key] = &dto.SlotStates{}
		order = append(order, key)
	}

	for _, row := range rows {
		slots, ok := states[dateOnly(row.Date).Format(dateLayout)]
		if !ok {
			continue
		}

		if row.Timeslot == model.TimeslotDay && row.Available {
			slots.Day = true
			slots.Morning = false
			slots.Afternoon = false
			continue
		}

		// A whole-day slot already won this day; leave it.
		if slots.Day {
			continue
		}

		switch row.Timeslot {
		case model.TimeslotMorning:
			slots.Morning = slots.Morning || row.Available
		case model.TimeslotAfternoon:
			slots.Afternoon = slots.Afternoon || row.Available
		}
	}

	calendar := make([]dto.DayAvailability, 0, len(order))
	for _, key := range order {
		slots := states[key]
		calendar = append(calendar, dto.DayAvailability{
			Date:     key,
			Slots:    *slots,
			Selected: selectedSlot(*slots),
		})
	}

	return calendar
}

// selectedSlot reduces the three flags to the single coach edit-view
// value, priority day > morning > afternoon > none.
func selectedSlot(s dto.SlotStates) string {
	switch {
	case s.Day:
		return string(model.TimeslotDay)
	case s.Morning:
		return string(model.TimeslotMorning)
	case s.Afternoon:
		return string(model.TimeslotAfternoon)
	}
	return "none"
}

var allTimeslots = []model.Timeslot{model.TimeslotMorning, model.TimeslotAfternoon, model.TimeslotDay}

// PlanSlotWrites computes the row inserts and flag updates for one
// availability submission. For each day, the chosen slot becomes
// available (inserting the row if absent) and the other slots are
// flipped to unavailable when a row exists. Rows are never deleted,
// and untouched rows yield no write, which makes re-submitting the
// same selection a no-op.
func PlanSlotWrites(location string, selections map[time.Time]model.Timeslot, existing []model.Availability) ([]model.Availability, map[uuid.UUID]bool) {
	type slotKey struct {
		date string
		slot model.Timeslot
	}

	rows := make(map[slotKey]model.Availability, len(existing))
	for _, row := range existing {
		if row.Location != location {
			continue
		}
		rows[slotKey{dateOnly(row.Date).Format(dateLayout), row.Timeslot}] = row
	}

	var creates []model.Availability
	updates := make(map[uuid.UUID]bool)

	for day, chosen := range selections {
		day = dateOnly(day)
		for _, slot := range allTimeslots {
			row, exists := rows[slotKey{day.Format(dateLayout), slot}]

			if slot == chosen {
				if !exists {
					creates = append(creates, model.Availability{
						Date:      day,
						Location:  location,
						Timeslot:  slot,
						Available: true,
					})
				} else if !row.Available {
					updates[row.ID] = true
				}
			} else if exists && row.Available {
				updates[row.ID] = false
			}
		}
	}

	return creates, updates
}
