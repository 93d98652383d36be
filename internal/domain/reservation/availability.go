package reservation

import (
	"cmp"
	"slices"
	"time"

	"mesa-booking/internal/domain/table"
)

// Slot is one existing booking on the queried date. Date is empty when the
// backend did not report it.
type Slot struct {
	TableID table.TableID
	Date    string
	Time    TimeOfDay
}

// Filter keeps the tables that seat capacity people, marks each one
// unavailable if any of its slots overlaps requested, and orders the result by
// table number. It never returns nil.
func Filter(tables []table.Table, slots []Slot, requested TimeOfDay, capacity int, d time.Duration) []table.Availability {
	byTable := make(map[string][]TimeOfDay, len(slots))
	for _, s := range slots {
		byTable[s.TableID.String()] = append(byTable[s.TableID.String()], s.Time)
	}

	result := make([]table.Availability, 0, len(tables))
	for _, t := range tables {
		if !t.Seats(capacity) {
			continue
		}
		available := !slices.ContainsFunc(byTable[t.ID.String()], func(booked TimeOfDay) bool {
			return Overlap(requested, booked, d)
		})
		result = append(result, t.WithAvailability(available))
	}

	slices.SortStableFunc(result, func(a, b table.Availability) int {
		return cmp.Compare(a.Number, b.Number)
	})
	return result
}

func (p Policy) Filter(tables []table.Table, slots []Slot, requested TimeOfDay, capacity int) []table.Availability {
	return Filter(tables, slots, requested, capacity, p.ServiceDuration)
}

// OnDate drops slots known to belong to a different date.
func OnDate(slots []Slot, date string) []Slot {
	kept := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Date != "" && s.Date != date {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
