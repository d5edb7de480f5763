package domain

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ItineraryDay is one dated entry in a vacation's itinerary. Date carries
// date-only semantics; Time is free text used only for read ordering and is
// never validated as a real clock value. The optional Coordinates belong to
// the day itself, independent of any coordinates on its activities.
type ItineraryDay struct {
	ID          uuid.UUID    `json:"id"`
	Date        time.Time    `json:"date"`
	Time        string       `json:"time,omitempty"`
	Activities  []Activity   `json:"activities"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

func (d ItineraryDay) recordID() uuid.UUID { return d.ID }

// Activity is a single entry in a day's activity list. Stored documents
// contain two shapes side by side: a plain free-text label, and a structured
// record produced by the marker merge. Exactly one of Label or Detail is set;
// the two forms are never coerced into each other.
type Activity struct {
	Label  string
	Detail *ActivityDetail
}

// ActivityDetail is the structured activity shape created by the marker flow.
type ActivityDetail struct {
	Description string      `json:"description"`
	Time        string      `json:"time"`
	Coordinates Coordinates `json:"coordinates"`
}

// MarshalJSON emits the historical wire shape: a bare JSON string for the
// plain form, an object for the structured form.
func (a Activity) MarshalJSON() ([]byte, error) {
	if a.Detail != nil {
		return json.Marshal(a.Detail)
	}
	return json.Marshal(a.Label)
}

// UnmarshalJSON accepts both shapes. A JSON string becomes a Label; anything
// else is decoded as an ActivityDetail.
func (a *Activity) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		a.Detail = nil
		return json.Unmarshal(data, &a.Label)
	}
	var d ActivityDetail
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	a.Label = ""
	a.Detail = &d
	return nil
}

// AddItineraryDay assigns a fresh ID to d and appends it to the itinerary.
// Nil activity lists are normalized to empty so the day always serializes
// with an "activities" array.
func (v *Vacation) AddItineraryDay(d ItineraryDay) ItineraryDay {
	d.ID = uuid.New()
	if d.Activities == nil {
		d.Activities = []Activity{}
	}
	v.Itinerary = append(v.Itinerary, d)
	return d
}

// UpdateItineraryDay overwrites the editable fields of the day identified by
// id, keeping the ID stable. Reports whether the day was found.
func (v *Vacation) UpdateItineraryDay(id uuid.UUID, d ItineraryDay) bool {
	i := indexByID(v.Itinerary, id)
	if i < 0 {
		return false
	}
	d.ID = id
	if d.Activities == nil {
		d.Activities = []Activity{}
	}
	v.Itinerary[i] = d
	return true
}

// RemoveItineraryDay deletes the day identified by id.
// Reports whether the day was found.
func (v *Vacation) RemoveItineraryDay(id uuid.UUID) bool {
	days, ok := removeByID(v.Itinerary, id)
	v.Itinerary = days
	return ok
}

// Marker is a dated, timed, geolocated activity reported by a caller,
// destined to be merged into the itinerary by calendar-day match.
type Marker struct {
	Date        time.Time
	Time        string
	Description string
	Coordinates Coordinates
}

// MergeMarker folds a marker into the itinerary. The target day is matched by
// UTC calendar-day equality against the marker's date; when no such day
// exists a new one is created carrying the marker's date and nothing else —
// no top-level time or coordinates, those live only on its activities. The
// marker always lands as a structured activity appended to the matched day,
// whose own stored time and coordinates are left untouched.
func (v *Vacation) MergeMarker(m Marker) *ItineraryDay {
	target := DayOf(m.Date)
	i := -1
	for j := range v.Itinerary {
		if DayOf(v.Itinerary[j].Date).Equal(target) {
			i = j
			break
		}
	}
	if i < 0 {
		v.Itinerary = append(v.Itinerary, ItineraryDay{
			ID:         uuid.New(),
			Date:       m.Date,
			Activities: []Activity{},
		})
		i = len(v.Itinerary) - 1
	}
	day := &v.Itinerary[i]
	day.Activities = append(day.Activities, Activity{Detail: &ActivityDetail{
		Description: m.Description,
		Time:        m.Time,
		Coordinates: m.Coordinates,
	}})
	return day
}

// sortKey combines the calendar day of Date with the free-text Time into a
// single timestamp: "2025-07-04" + "14:00" → 2025-07-04T14:00 UTC. A missing
// or unparseable time falls back to the start of the day.
func (d ItineraryDay) sortKey() time.Time {
	hhmm := d.Time
	if hhmm == "" {
		hhmm = "00:00"
	}
	ts, err := time.Parse("2006-01-02T15:04", d.Date.UTC().Format("2006-01-02")+"T"+hhmm)
	if err != nil {
		return DayOf(d.Date)
	}
	return ts
}

// SortItinerary orders days ascending by the (calendar day, time) composite
// key. The sort is stable, so entries with equal keys keep their original
// insertion order. Callers apply this on every read; the stored order is
// never rewritten.
func SortItinerary(days []ItineraryDay) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].sortKey().Before(days[j].sortKey())
	})
}
