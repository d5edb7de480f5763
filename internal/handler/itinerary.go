package handler

import (
	"errors"
	"net/http"

	"github.com/tripdesk/backend/internal/domain"
)

// itineraryDayRequest is the body of POST and PUT under
// /api/vacations/{id}/itinerary. Activities accept both historical shapes
// (bare strings and structured records) via the domain.Activity codec.
type itineraryDayRequest struct {
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	Activities  []domain.Activity   `json:"activities"`
	Coordinates *domain.Coordinates `json:"coordinates"`
}

// markerRequest is the body of POST and PUT under /api/vacations/{id}/markers.
// Coordinates use pointer fields so "absent" can be told apart from zero —
// every field of a marker is required.
type markerRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Coordinates *struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	} `json:"coordinates"`
}

// CreateItineraryDay handles POST /api/vacations/{vacationID}/itinerary.
// Responds with the whole updated vacation.
func (s *Server) CreateItineraryDay(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}

	var req itineraryDayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	day, err := requestToDay(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := s.itinerary.AddDay(r.Context(), vacationID, day)
	if err != nil {
		writeServiceError(w, err, "vacation not found")
		return
	}

	writeJSON(w, http.StatusCreated, updated)
}

// UpdateItineraryDay handles PUT /api/vacations/{vacationID}/itinerary/{dayID}.
func (s *Server) UpdateItineraryDay(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}
	dayID, err := pathID(r, "dayID")
	if err != nil {
		writeNotFound(w, "itinerary day not found")
		return
	}

	var req itineraryDayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	day, err := requestToDay(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := s.itinerary.UpdateDay(r.Context(), vacationID, dayID, day)
	if err != nil {
		writeServiceError(w, err, "vacation or itinerary day not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteItineraryDay handles DELETE /api/vacations/{vacationID}/itinerary/{dayID}.
// Responds with the whole updated vacation.
func (s *Server) DeleteItineraryDay(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}
	dayID, err := pathID(r, "dayID")
	if err != nil {
		writeNotFound(w, "itinerary day not found")
		return
	}

	updated, err := s.itinerary.RemoveDay(r.Context(), vacationID, dayID)
	if err != nil {
		writeServiceError(w, err, "vacation or itinerary day not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// CreateMarker handles POST /api/vacations/{vacationID}/markers.
// The marker is merged into the itinerary by calendar-day match; the
// response is the whole updated vacation.
func (s *Server) CreateMarker(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}

	var req markerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	marker, err := requestToMarker(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := s.itinerary.AddMarker(r.Context(), vacationID, marker)
	if err != nil {
		writeServiceError(w, err, "vacation not found")
		return
	}

	writeJSON(w, http.StatusCreated, updated)
}

// UpdateMarker handles PUT /api/vacations/{vacationID}/markers/{dayID}.
// Re-points an existing itinerary day at the marker's date, time, and
// coordinates; no calendar-day matching is involved.
func (s *Server) UpdateMarker(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}
	dayID, err := pathID(r, "dayID")
	if err != nil {
		writeNotFound(w, "marker not found")
		return
	}

	var req markerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	marker, err := requestToMarker(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := s.itinerary.UpdateMarker(r.Context(), vacationID, dayID, marker)
	if err != nil {
		writeServiceError(w, err, "vacation or marker not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// requestToDay converts an itineraryDayRequest into a domain.ItineraryDay.
// Returns an error for dates that are present but unparseable.
func requestToDay(req itineraryDayRequest) (domain.ItineraryDay, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return domain.ItineraryDay{}, errors.New("date must be a date (2006-01-02) or RFC 3339 timestamp")
	}
	return domain.ItineraryDay{
		Date:        date,
		Time:        req.Time,
		Activities:  req.Activities,
		Coordinates: req.Coordinates,
	}, nil
}

// requestToMarker converts a markerRequest into a domain.Marker, enforcing
// the presence of numeric coordinates at the JSON boundary.
func requestToMarker(req markerRequest) (domain.Marker, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return domain.Marker{}, errors.New("date must be a date (2006-01-02) or RFC 3339 timestamp")
	}
	if req.Coordinates == nil || req.Coordinates.Lat == nil || req.Coordinates.Lng == nil {
		return domain.Marker{}, errors.New("coordinates.lat and coordinates.lng are required numbers")
	}
	return domain.Marker{
		Date:        date,
		Time:        req.Time,
		Description: req.Description,
		Coordinates: domain.Coordinates{Lat: *req.Coordinates.Lat, Lng: *req.Coordinates.Lng},
	}, nil
}
