package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flight is a booked flight embedded in a vacation.
// All fields are required; see service.validateFlight.
type Flight struct {
	ID               uuid.UUID `json:"id"`
	Airline          string    `json:"airline"`
	FlightNumber     string    `json:"flightNumber"`
	DepartureAirport string    `json:"departureAirport"`
	ArrivalAirport   string    `json:"arrivalAirport"`
	DepartureTime    time.Time `json:"departureTime"`
	ArrivalTime      time.Time `json:"arrivalTime"`
}

func (f Flight) recordID() uuid.UUID { return f.ID }

// AddFlight assigns a fresh ID to f and appends it to the vacation.
// Returns the flight as stored, ID included.
func (v *Vacation) AddFlight(f Flight) Flight {
	f.ID = uuid.New()
	v.Flights = append(v.Flights, f)
	return f
}

// UpdateFlight overwrites the editable fields of the flight identified by id,
// keeping the ID stable. Reports whether the flight was found.
func (v *Vacation) UpdateFlight(id uuid.UUID, f Flight) bool {
	i := indexByID(v.Flights, id)
	if i < 0 {
		return false
	}
	f.ID = id
	v.Flights[i] = f
	return true
}

// RemoveFlight deletes the flight identified by id.
// Reports whether the flight was found.
func (v *Vacation) RemoveFlight(id uuid.UUID) bool {
	flights, ok := removeByID(v.Flights, id)
	v.Flights = flights
	return ok
}
