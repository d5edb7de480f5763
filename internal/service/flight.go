package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/repo"
)

// FlightService implements business logic for the flights embedded in a
// vacation. Every operation runs as one load-mutate-save unit over the
// parent aggregate.
type FlightService struct {
	vacations repo.VacationRepo
	cache     Cache
}

// NewFlightService constructs a FlightService backed by the provided repo.
func NewFlightService(r repo.VacationRepo, c Cache) *FlightService {
	return &FlightService{vacations: r, cache: c}
}

// Add validates the flight, assigns it a fresh ID, and appends it to the
// vacation. Returns the updated vacation.
// Returns domain.ErrNotFound if the vacation does not exist.
func (s *FlightService) Add(ctx context.Context, vacationID uuid.UUID, f domain.Flight) (domain.Vacation, error) {
	if err := validateFlight(f); err != nil {
		return domain.Vacation{}, err
	}
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		v.AddFlight(f)
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.FlightService.Add: %w", err)
	}
	return result, nil
}

// Update overwrites the editable fields of the flight identified by flightID.
// Returns domain.ErrNotFound if either the vacation or the flight is missing;
// in the latter case nothing is written back.
func (s *FlightService) Update(ctx context.Context, vacationID, flightID uuid.UUID, f domain.Flight) (domain.Vacation, error) {
	if err := validateFlight(f); err != nil {
		return domain.Vacation{}, err
	}
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		if !v.UpdateFlight(flightID, f) {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.FlightService.Update: %w", err)
	}
	return result, nil
}

// Remove deletes the flight identified by flightID and returns the updated
// vacation. Removing an already-absent flight is a not-found, never a crash.
func (s *FlightService) Remove(ctx context.Context, vacationID, flightID uuid.UUID) (domain.Vacation, error) {
	result, err := mutate(ctx, s.vacations, s.cache, vacationID, func(v *domain.Vacation) error {
		if !v.RemoveFlight(flightID) {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.FlightService.Remove: %w", err)
	}
	return result, nil
}

// validateFlight enforces the required fields common to Add and Update.
// Departure-before-arrival is deliberately not checked, matching the
// established API behavior.
func validateFlight(f domain.Flight) error {
	if strings.TrimSpace(f.Airline) == "" {
		return fmt.Errorf("%w: airline is required", domain.ErrValidation)
	}
	if strings.TrimSpace(f.FlightNumber) == "" {
		return fmt.Errorf("%w: flightNumber is required", domain.ErrValidation)
	}
	if strings.TrimSpace(f.DepartureAirport) == "" {
		return fmt.Errorf("%w: departureAirport is required", domain.ErrValidation)
	}
	if strings.TrimSpace(f.ArrivalAirport) == "" {
		return fmt.Errorf("%w: arrivalAirport is required", domain.ErrValidation)
	}
	if f.DepartureTime.IsZero() {
		return fmt.Errorf("%w: departureTime is required", domain.ErrValidation)
	}
	if f.ArrivalTime.IsZero() {
		return fmt.Errorf("%w: arrivalTime is required", domain.ErrValidation)
	}
	return nil
}
