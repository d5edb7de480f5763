package handler

import (
	"errors"
	"net/http"

	"github.com/tripdesk/backend/internal/domain"
)

// flightRequest is the body of POST and PUT under /api/vacations/{id}/flights.
type flightRequest struct {
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flightNumber"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	DepartureTime    string `json:"departureTime"`
	ArrivalTime      string `json:"arrivalTime"`
}

// CreateFlight handles POST /api/vacations/{vacationID}/flights.
// Responds with the whole updated vacation.
func (s *Server) CreateFlight(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}

	var req flightRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	flight, err := requestToFlight(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := s.flights.Add(r.Context(), vacationID, flight)
	if err != nil {
		writeServiceError(w, err, "vacation not found")
		return
	}

	writeJSON(w, http.StatusCreated, updated)
}

// UpdateFlight handles PUT /api/vacations/{vacationID}/flights/{flightID}.
func (s *Server) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}
	flightID, err := pathID(r, "flightID")
	if err != nil {
		writeNotFound(w, "flight not found")
		return
	}

	var req flightRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	flight, err := requestToFlight(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := s.flights.Update(r.Context(), vacationID, flightID, flight)
	if err != nil {
		writeServiceError(w, err, "vacation or flight not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteFlight handles DELETE /api/vacations/{vacationID}/flights/{flightID}.
// Responds with the whole updated vacation.
func (s *Server) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}
	flightID, err := pathID(r, "flightID")
	if err != nil {
		writeNotFound(w, "flight not found")
		return
	}

	updated, err := s.flights.Remove(r.Context(), vacationID, flightID)
	if err != nil {
		writeServiceError(w, err, "vacation or flight not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// requestToFlight converts a flightRequest into a domain.Flight.
// Returns an error for timestamps that are present but unparseable.
func requestToFlight(req flightRequest) (domain.Flight, error) {
	dep, err := parseDate(req.DepartureTime)
	if err != nil {
		return domain.Flight{}, errors.New("departureTime must be a date (2006-01-02) or RFC 3339 timestamp")
	}
	arr, err := parseDate(req.ArrivalTime)
	if err != nil {
		return domain.Flight{}, errors.New("arrivalTime must be a date (2006-01-02) or RFC 3339 timestamp")
	}
	return domain.Flight{
		Airline:          req.Airline,
		FlightNumber:     req.FlightNumber,
		DepartureAirport: req.DepartureAirport,
		ArrivalAirport:   req.ArrivalAirport,
		DepartureTime:    dep,
		ArrivalTime:      arr,
	}, nil
}
