package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/repo"
)

// ExpenseService implements business logic for the expenses embedded in a
// vacation. Unlike the other child kinds, Add returns the created expense
// alone — single-item consumers want the assigned ID without re-reading the
// whole aggregate.
type ExpenseService struct {
	vacations repo.VacationRepo
	cache     Cache
}

// NewExpenseService constructs an ExpenseService backed by the provided repo.
func NewExpenseService(r repo.VacationRepo, c Cache) *ExpenseService {
	return &ExpenseService{vacations: r, cache: c}
}

// Add validates the expense, assigns it a fresh ID, appends it, and returns
// the created expense alone.
func (s *ExpenseService) Add(ctx context.Context, vacationID uuid.UUID, e domain.Expense) (domain.Expense, error) {
	if err := validateExpense(e); err != nil {
		return domain.Expense{}, err
	}
	var created domain.Expense
	_, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		created = v.AddExpense(e)
		return nil
	})
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Add: %w", err)
	}
	return created, nil
}

// List returns the vacation's expense sequence unmodified, in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExpenseService) List(ctx context.Context, vacationID uuid.UUID) ([]domain.Expense, error) {
	v, err := s.vacations.GetByID(ctx, vacationID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.List: %w", err)
	}
	if v.Expenses == nil {
		return []domain.Expense{}, nil
	}
	return v.Expenses, nil
}

// Update overwrites the editable fields of the expense identified by
// expenseID. Returns domain.ErrNotFound if either the vacation or the
// expense is missing.
func (s *ExpenseService) Update(ctx context.Context, vacationID, expenseID uuid.UUID, e domain.Expense) (domain.Vacation, error) {
	if err := validateExpense(e); err != nil {
		return domain.Vacation{}, err
	}
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		if !v.UpdateExpense(expenseID, e) {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	return result, nil
}

// Remove deletes the expense identified by expenseID. Removing an
// already-absent expense is a not-found, never a crash.
func (s *ExpenseService) Remove(ctx context.Context, vacationID, expenseID uuid.UUID) error {
	_, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		if !v.RemoveExpense(expenseID) {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.ExpenseService.Remove: %w", err)
	}
	return nil
}

// validateExpense enforces the required fields common to Add and Update.
// Amount presence is a JSON-shape concern checked at the handler boundary;
// its sign is deliberately unchecked.
func validateExpense(e domain.Expense) error {
	if !e.Category.Valid() {
		return fmt.Errorf("%w: category must be one of flight, hotel, car, groceries, activities, other", domain.ErrValidation)
	}
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	return nil
}
