// Package handler — export.go implements GET /api/export.
// Returns the flat expense report across all vacations.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/tripdesk/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"vacation_id", "vacation_name", "vacation_start_date", "vacation_end_date",
	"expense_id", "expense_category", "expense_description", "amount",
}

// exportRowResponse is the JSON shape of one export row. Expense fields are
// pointers so rows for expense-less vacations omit them entirely.
type exportRowResponse struct {
	VacationID        string   `json:"vacationId"`
	VacationName      string   `json:"vacationName"`
	VacationStartDate string   `json:"vacationStartDate"`
	VacationEndDate   string   `json:"vacationEndDate"`
	ExpenseID         *string  `json:"expenseId,omitempty"`
	ExpenseCategory   *string  `json:"expenseCategory,omitempty"`
	ExpenseDesc       *string  `json:"expenseDescription,omitempty"`
	Amount            *float64 `json:"amount,omitempty"`
}

// GetExport handles GET /api/export.
// It returns one row per expense with vacation fields repeated.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeInternal(w)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]exportRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToResponse(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes the rows as CSV with a fixed header line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(rowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// rowToResponse maps a domain row to the JSON response shape.
// Empty expense fields become nil pointers (omitempty in JSON).
func rowToResponse(r domain.ExportRow) exportRowResponse {
	resp := exportRowResponse{
		VacationID:        r.VacationID,
		VacationName:      r.VacationName,
		VacationStartDate: r.VacationStartDate,
		VacationEndDate:   r.VacationEndDate,
	}
	if r.ExpenseID != "" {
		resp.ExpenseID = &r.ExpenseID
		resp.ExpenseCategory = &r.ExpenseCategory
		resp.ExpenseDesc = &r.ExpenseDescription
		resp.Amount = &r.Amount
	}
	return resp
}

// rowToCSVRecord encodes a domain row as a flat string slice.
// The amount column is empty for expense-less rows rather than "0".
func rowToCSVRecord(r domain.ExportRow) []string {
	amount := ""
	if r.ExpenseID != "" {
		amount = strconv.FormatFloat(r.Amount, 'f', 2, 64)
	}
	return []string{
		r.VacationID,
		r.VacationName,
		r.VacationStartDate,
		r.VacationEndDate,
		r.ExpenseID,
		r.ExpenseCategory,
		r.ExpenseDescription,
		amount,
	}
}
