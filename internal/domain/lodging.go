package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lodging is a hotel or other stay embedded in a vacation.
// Every field except the ID is optional — a lodging can be sketched out with
// just a name long before dates or a booking link are known.
type Lodging struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name,omitempty"`
	Address      string    `json:"address,omitempty"`
	CheckInDate  time.Time `json:"checkInDate,omitzero"`
	CheckOutDate time.Time `json:"checkOutDate,omitzero"`
	BookingLink  string    `json:"bookingLink,omitempty"`
}

func (l Lodging) recordID() uuid.UUID { return l.ID }

// AddLodging assigns a fresh ID to l and appends it to the vacation.
func (v *Vacation) AddLodging(l Lodging) Lodging {
	l.ID = uuid.New()
	v.Lodgings = append(v.Lodgings, l)
	return l
}

// UpdateLodging overwrites the editable fields of the lodging identified by
// id, keeping the ID stable. Reports whether the lodging was found.
func (v *Vacation) UpdateLodging(id uuid.UUID, l Lodging) bool {
	i := indexByID(v.Lodgings, id)
	if i < 0 {
		return false
	}
	l.ID = id
	v.Lodgings[i] = l
	return true
}

// RemoveLodging deletes the lodging identified by id.
// Reports whether the lodging was found.
func (v *Vacation) RemoveLodging(id uuid.UUID) bool {
	lodgings, ok := removeByID(v.Lodgings, id)
	v.Lodgings = lodgings
	return ok
}
