package handler

import (
	"errors"
	"net/http"

	"github.com/tripdesk/backend/internal/domain"
)

// vacationRequest is the body of POST /api/vacations and PUT /api/vacations/{id}.
// Dates are strings so both "2006-01-02" and RFC 3339 inputs are accepted.
type vacationRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CreateVacation handles POST /api/vacations.
func (s *Server) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var req vacationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, err := requestToVacation(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	created, err := s.vacations.Create(r.Context(), v)
	if err != nil {
		writeServiceError(w, err, "vacation not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListVacations handles GET /api/vacations.
// Children are included; itineraries are returned in storage order here —
// only the single-vacation read pre-sorts them.
func (s *Server) ListVacations(w http.ResponseWriter, r *http.Request) {
	vacations, err := s.vacations.List(r.Context())
	if err != nil {
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, vacations)
}

// GetVacation handles GET /api/vacations/{vacationID}.
// The itinerary arrives pre-sorted by (calendar date, time).
func (s *Server) GetVacation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}

	v, err := s.vacations.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "vacation not found")
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// UpdateVacation handles PUT /api/vacations/{vacationID}.
// Only the root fields are replaced; children are untouched.
func (s *Server) UpdateVacation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}

	var req vacationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	root, err := requestToVacation(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := s.vacations.UpdateRoot(r.Context(), id, root)
	if err != nil {
		writeServiceError(w, err, "vacation not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteVacation handles DELETE /api/vacations/{vacationID}.
// Deleting a vacation cascades to all embedded children. A repeat delete is
// a 404, not a silent success.
func (s *Server) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}

	if err := s.vacations.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "vacation not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestToVacation converts a vacationRequest into a domain.Vacation root.
// Returns an error for dates that are present but unparseable.
func requestToVacation(req vacationRequest) (domain.Vacation, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return domain.Vacation{}, errors.New("startDate must be a date (2006-01-02) or RFC 3339 timestamp")
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return domain.Vacation{}, errors.New("endDate must be a date (2006-01-02) or RFC 3339 timestamp")
	}
	return domain.Vacation{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
	}, nil
}
