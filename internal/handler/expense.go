package handler

import (
	"errors"
	"net/http"

	"github.com/tripdesk/backend/internal/domain"
)

// expenseRequest is the body of POST and PUT under /api/vacations/{id}/expenses.
// Amount is a pointer so a missing amount can be told apart from zero.
type expenseRequest struct {
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

// CreateExpense handles POST /api/vacations/{vacationID}/expenses.
// Unlike the other child kinds, the response is the created expense alone.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}

	var req expenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	expense, err := requestToExpense(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	created, err := s.expenses.Add(r.Context(), vacationID, expense)
	if err != nil {
		writeServiceError(w, err, "vacation not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListExpenses handles GET /api/vacations/{vacationID}/expenses.
// Returns the expense sequence unmodified, in insertion order.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}

	expenses, err := s.expenses.List(r.Context(), vacationID)
	if err != nil {
		writeServiceError(w, err, "vacation not found")
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

// UpdateExpense handles PUT /api/vacations/{vacationID}/expenses/{expenseID}.
// Responds with the whole updated vacation.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}
	expenseID, err := pathID(r, "expenseID")
	if err != nil {
		writeNotFound(w, "expense not found")
		return
	}

	var req expenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	expense, err := requestToExpense(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	updated, err := s.expenses.Update(r.Context(), vacationID, expenseID, expense)
	if err != nil {
		writeServiceError(w, err, "vacation or expense not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteExpense handles DELETE /api/vacations/{vacationID}/expenses/{expenseID}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	vacationID, err := pathID(r, "vacationID")
	if err != nil {
		writeNotFound(w, "vacation not found")
		return
	}
	expenseID, err := pathID(r, "expenseID")
	if err != nil {
		writeNotFound(w, "expense not found")
		return
	}

	if err := s.expenses.Remove(r.Context(), vacationID, expenseID); err != nil {
		writeServiceError(w, err, "vacation or expense not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestToExpense converts an expenseRequest into a domain.Expense.
// A missing amount is rejected here; category membership is a service rule.
func requestToExpense(req expenseRequest) (domain.Expense, error) {
	if req.Amount == nil {
		return domain.Expense{}, errors.New("amount is required")
	}
	return domain.Expense{
		Amount:      *req.Amount,
		Category:    domain.ExpenseCategory(req.Category),
		Description: req.Description,
	}, nil
}
