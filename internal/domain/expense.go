package domain

import "github.com/google/uuid"

// ExpenseCategory is the fixed set of expense buckets.
type ExpenseCategory string

const (
	CategoryFlight     ExpenseCategory = "flight"
	CategoryHotel      ExpenseCategory = "hotel"
	CategoryCar        ExpenseCategory = "car"
	CategoryGroceries  ExpenseCategory = "groceries"
	CategoryActivities ExpenseCategory = "activities"
	CategoryOther      ExpenseCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryFlight, CategoryHotel, CategoryCar, CategoryGroceries, CategoryActivities, CategoryOther:
		return true
	}
	return false
}

// Expense is a single cost entry embedded in a vacation.
// Amount is signed; negative values (refunds) are not rejected.
type Expense struct {
	ID          uuid.UUID       `json:"id"`
	Amount      float64         `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
}

func (e Expense) recordID() uuid.UUID { return e.ID }

// AddExpense assigns a fresh ID to e and appends it to the vacation.
func (v *Vacation) AddExpense(e Expense) Expense {
	e.ID = uuid.New()
	v.Expenses = append(v.Expenses, e)
	return e
}

// UpdateExpense overwrites the editable fields of the expense identified by
// id, keeping the ID stable. Reports whether the expense was found.
func (v *Vacation) UpdateExpense(id uuid.UUID, e Expense) bool {
	i := indexByID(v.Expenses, id)
	if i < 0 {
		return false
	}
	e.ID = id
	v.Expenses[i] = e
	return true
}

// RemoveExpense deletes the expense identified by id.
// Reports whether the expense was found.
func (v *Vacation) RemoveExpense(id uuid.UUID) bool {
	expenses, ok := removeByID(v.Expenses, id)
	v.Expenses = expenses
	return ok
}
