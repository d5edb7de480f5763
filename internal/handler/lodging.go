package handler

import (
	"errors"
	"net/http"

	"github.com/tripdesk/backend/internal/domain"
)

// lodgingRequest is the body of POST and PUT under /api/vacations/{id}/lodgings.
// Every field is optional.
type lodgingRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	BookingLink  string `json:"bookingLink"`
}

// CreateLodging handles POST /api/vacations/{vacationID}/lodgings.
// Responds with the whole updated vacation.
func (s *Server) CreateLodging(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}

	var req lodgingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	lodging, err := requestToLodging(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := s.lodgings.Add(r.Context(), vacationID, lodging)
	if err != nil {
		writeServiceError(w, err, "vacation not found")
		return
	}

	writeJSON(w, http.StatusCreated, updated)
}

// UpdateLodging handles PUT /api/vacations/{vacationID}/lodgings/{lodgingID}.
func (s *Server) UpdateLodging(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}
	lodgingID, err := pathID(r, "lodgingID")
	if err != nil {
		writeNotFound(w, "lodging not found")
		return
	}

	var req lodgingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	lodging, err := requestToLodging(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := s.lodgings.Update(r.Context(), vacationID, lodgingID, lodging)
	if err != nil {
		writeServiceError(w, err, "vacation or lodging not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteLodging handles DELETE /api/vacations/{vacationID}/lodgings/{lodgingID}.
// Responds with the whole updated vacation.
func (s *Server) DeleteLodging(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}
	lodgingID, err := pathID(r, "lodgingID")
	if err != nil {
		writeNotFound(w, "lodging not found")
		return
	}

	updated, err := s.lodgings.Remove(r.Context(), vacationID, lodgingID)
	if err != nil {
		writeServiceError(w, err, "vacation or lodging not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// requestToLodging converts a lodgingRequest into a domain.Lodging.
// Returns an error for dates that are present but unparseable.
func requestToLodging(req lodgingRequest) (domain.Lodging, error) {
	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return domain.Lodging{}, errors.New("checkInDate must be a date (2006-01-02) or RFC 3339 timestamp")
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return domain.Lodging{}, errors.New("checkOutDate must be a date (2006-01-02) or RFC 3339 timestamp")
	}
	return domain.Lodging{
		Name:         req.Name,
		Address:      req.Address,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		BookingLink:  req.BookingLink,
	}, nil
}
