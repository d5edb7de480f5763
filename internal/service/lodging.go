package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/repo"
)

// LodgingService implements business logic for the lodgings embedded in a
// vacation. Lodgings have no required fields beyond their generated ID, so
// there is no validate helper here.
type LodgingService struct {
	vacations repo.VacationRepo
	cache     Cache
}

// NewLodgingService constructs a LodgingService backed by the provided repo.
func NewLodgingService(r repo.VacationRepo, c Cache) *LodgingService {
	return &LodgingService{vacations: r, cache: c}
}

// Add assigns a fresh ID to the lodging and appends it to the vacation.
// Returns the updated vacation.
func (s *LodgingService) Add(ctx context.Context, vacationID uuid.UUID, l domain.Lodging) (domain.Vacation, error) {
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		v.AddLodging(l)
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.LodgingService.Add: %w", err)
	}
	return result, nil
}

// Update overwrites the editable fields of the lodging identified by
// lodgingID. Returns domain.ErrNotFound if either the vacation or the
// lodging is missing.
func (s *LodgingService) Update(ctx context.Context, vacationID, lodgingID uuid.UUID, l domain.Lodging) (domain.Vacation, error) {
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		if !v.UpdateLodging(lodgingID, l) {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.LodgingService.Update: %w", err)
	}
	return result, nil
}

// Remove deletes the lodging identified by lodgingID and returns the updated
// vacation.
func (s *LodgingService) Remove(ctx context.Context, vacationID, lodgingID uuid.UUID) (domain.Vacation, error) {
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		if !v.RemoveLodging(lodgingID) {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.LodgingService.Remove: %w", err)
	}
	return result, nil
}
