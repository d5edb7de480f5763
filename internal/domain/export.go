package domain

// ExportRow is a single row in the expense report export.
// It is a flat, denormalized view: one row per expense, with vacation fields
// repeated for every expense on that vacation. Vacations with no expenses
// yield one row with zero values for all expense fields.
type ExportRow struct {
	// Vacation fields — repeated for every expense on the vacation.
	VacationID        string
	VacationName      string
	VacationStartDate string // "2006-01-02" formatted date
	VacationEndDate   string

	// Expense fields — zero values when the vacation has no expenses.
	ExpenseID          string
	ExpenseCategory    string
	ExpenseDescription string
	Amount             float64
}
