package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/repo"
)

// ItineraryService implements business logic for itinerary days and for the
// marker merge — the one keyed-merge operation in the system. Everything else
// here is identity-addressed CRUD like the other child services.
type ItineraryService struct {
	vacations repo.VacationRepo
	cache     Cache
}

// NewItineraryService constructs an ItineraryService backed by the provided repo.
func NewItineraryService(r repo.VacationRepo, c Cache) *ItineraryService {
	return &ItineraryService{vacations: r, cache: c}
}

// AddDay validates the day, assigns it a fresh ID, and appends it to the
// itinerary. Returns the updated vacation.
func (s *ItineraryService) AddDay(ctx context.Context, vacationID uuid.UUID, d domain.ItineraryDay) (domain.Vacation, error) {
	if err := validateDay(d); err != nil {
		return domain.Vacation{}, err
	}
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		v.AddItineraryDay(d)
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.ItineraryService.AddDay: %w", err)
	}
	return result, nil
}

// UpdateDay overwrites the editable fields of the day identified by dayID.
// Returns domain.ErrNotFound if either the vacation or the day is missing.
func (s *ItineraryService) UpdateDay(ctx context.Context, vacationID, dayID uuid.UUID, d domain.ItineraryDay) (domain.Vacation, error) {
	if err := validateDay(d); err != nil {
		return domain.Vacation{}, err
	}
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		if !v.UpdateItineraryDay(dayID, d) {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.ItineraryService.UpdateDay: %w", err)
	}
	return result, nil
}

// RemoveDay deletes the day identified by dayID, embedded activities
// included, and returns the updated vacation.
func (s *ItineraryService) RemoveDay(ctx context.Context, vacationID, dayID uuid.UUID) (domain.Vacation, error) {
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		if !v.RemoveItineraryDay(dayID) {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.ItineraryService.RemoveDay: %w", err)
	}
	return result, nil
}

// AddMarker merges a reported marker into the itinerary: the day matching
// the marker's calendar date gains a structured activity, and the day is
// created first when no day for that date exists. Returns the updated
// vacation with the merge already persisted.
func (s *ItineraryService) AddMarker(ctx context.Context, vacationID uuid.UUID, m domain.Marker) (domain.Vacation, error) {
	if err := validateMarker(m); err != nil {
		return domain.Vacation{}, err
	}
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		v.MergeMarker(m)
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.ItineraryService.AddMarker: %w", err)
	}
	return result, nil
}

// UpdateMarker re-points the itinerary day identified by dayID at the
// marker's date, time, and coordinates. Unlike AddMarker this is
// identity-addressed: no calendar-day matching is involved.
func (s *ItineraryService) UpdateMarker(ctx context.Context, vacationID, dayID uuid.UUID, m domain.Marker) (domain.Vacation, error) {
	if err := validateMarker(m); err != nil {
		return domain.Vacation{}, err
	}
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		i := -1
		for j := range v.Itinerary {
			if v.Itinerary[j].ID == dayID {
				i = j
				break
			}
		}
		if i < 0 {
			return domain.ErrNotFound
		}
		v.Itinerary[i].Date = m.Date
		v.Itinerary[i].Time = m.Time
		coords := m.Coordinates
		v.Itinerary[i].Coordinates = &coords
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.ItineraryService.UpdateMarker: %w", err)
	}
	return result, nil
}

// validateDay enforces the one required field on a directly-created day.
// Time, activities, and coordinates are all optional.
func validateDay(d domain.ItineraryDay) error {
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	return nil
}

// validateMarker enforces the marker contract: date, time, description, and
// coordinates are all required. Coordinate numericness is a JSON-shape
// concern checked at the handler boundary.
func validateMarker(m domain.Marker) error {
	if m.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if strings.TrimSpace(m.Time) == "" {
		return fmt.Errorf("%w: time is required", domain.ErrValidation)
	}
	if strings.TrimSpace(m.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	return nil
}
