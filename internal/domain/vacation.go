// Package domain contains the core data types for the Tripdesk API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vacation is the aggregate root of the whole system. It owns four embedded
// child collections — flights, lodgings, itinerary days, and expenses — which
// are persisted and loaded together as one unit. Children never have a
// lifecycle of their own: deleting the vacation deletes everything under it.
type Vacation struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	StartDate time.Time      `json:"startDate"`
	EndDate   time.Time      `json:"endDate"`
	Flights   []Flight       `json:"flights"`
	Lodgings  []Lodging      `json:"lodgings"`
	Itinerary []ItineraryDay `json:"itinerary"`
	Expenses  []Expense      `json:"expenses"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// child is satisfied by every embedded record type (Flight, Lodging,
// ItineraryDay, Expense). Children are addressed only by their generated ID.
type child interface {
	recordID() uuid.UUID
}

// indexByID returns the position of the child with the given ID, or -1.
func indexByID[C child](s []C, id uuid.UUID) int {
	for i, c := range s {
		if c.recordID() == id {
			return i
		}
	}
	return -1
}

// removeByID deletes the child with the given ID, preserving the order of the
// remaining entries. The second return value reports whether it was found.
func removeByID[C child](s []C, id uuid.UUID) ([]C, bool) {
	i := indexByID(s, id)
	if i < 0 {
		return s, false
	}
	return append(s[:i], s[i+1:]...), true
}

// DayOf truncates a timestamp to its UTC calendar day. Calendar-day equality
// — never full-timestamp equality — is how itinerary days are matched by the
// marker merge.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
