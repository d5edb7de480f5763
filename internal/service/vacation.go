// Package service contains the business logic for the Tripdesk API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. Every child mutation is a single load-mutate-save unit over the
// whole aggregate: the vacation is loaded fresh, amended in memory, and
// written back as one document. No SQL lives here — services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/repo"
)

// Cache is an optional read-through cache for single vacations. A nil Cache
// disables caching entirely. Cache failures never fail the request: a read
// error counts as a miss, and write/invalidate errors are dropped — the
// entry's TTL bounds how long a stale copy can linger.
type Cache interface {
	// GetVacation returns the cached vacation and whether it was present.
	GetVacation(ctx context.Context, id uuid.UUID) (domain.Vacation, bool, error)

	// SetVacation stores the vacation under its ID.
	SetVacation(ctx context.Context, v domain.Vacation) error

	// DeleteVacation drops the cached entry for the given ID.
	DeleteVacation(ctx context.Context, id uuid.UUID) error
}

// VacationService implements business logic for root vacation operations.
type VacationService struct {
	repo  repo.VacationRepo
	cache Cache
}

// NewVacationService constructs a VacationService backed by the provided
// VacationRepo. Pass a nil cache to disable caching.
func NewVacationService(r repo.VacationRepo, c Cache) *VacationService {
	return &VacationService{repo: r, cache: c}
}

// Create validates and persists a new vacation. Child collections start
// empty unless an initial snapshot is supplied on the input.
func (s *VacationService) Create(ctx context.Context, v domain.Vacation) (domain.Vacation, error) {
	if err := validateVacation(v); err != nil {
		return domain.Vacation{}, err
	}
	result, err := s.repo.Create(ctx, v)
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.VacationService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single vacation with its itinerary sorted by the
// (calendar date, time) composite key. The ordering is recomputed on every
// read and never written back to storage.
func (s *VacationService) GetByID(ctx context.Context, id uuid.UUID) (domain.Vacation, error) {
	if s.cache != nil {
		if v, ok, err := s.cache.GetVacation(ctx, id); err == nil && ok {
			domain.SortItinerary(v.Itinerary)
			return v, nil
		}
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.VacationService.GetByID: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.SetVacation(ctx, v)
	}
	domain.SortItinerary(v.Itinerary)
	return v, nil
}

// List returns all vacations, children included, in storage order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VacationService) List(ctx context.Context) ([]domain.Vacation, error) {
	vacations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VacationService.List: %w", err)
	}
	if vacations == nil {
		return []domain.Vacation{}, nil
	}
	return vacations, nil
}

// UpdateRoot replaces only the root fields (name, start date, end date) of
// an existing vacation; all child collections are left untouched.
func (s *VacationService) UpdateRoot(ctx context.Context, id uuid.UUID, root domain.Vacation) (domain.Vacation, error) {
	if err := validateVacation(root); err != nil {
		return domain.Vacation{}, err
	}
	result, err := mutate(ctx, s.repo, s.cache, id, func(v *domain.Vacation) error {
		v.Name = root.Name
		v.StartDate = root.StartDate
		v.EndDate = root.EndDate
		return nil
	})
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("service.VacationService.UpdateRoot: %w", err)
	}
	return result, nil
}

// Delete removes a vacation and all its embedded children.
// Returns domain.ErrNotFound if the vacation does not exist — deleting an
// already-deleted vacation is a not-found, not a silent success.
func (s *VacationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.VacationService.Delete: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.DeleteVacation(ctx, id)
	}
	return nil
}

// mutate is the single load-mutate-save unit shared by every operation that
// amends an existing aggregate. The vacation is always loaded fresh from the
// repo — never from cache — so the mutation applies to current storage state.
// After a successful save the cached copy is invalidated.
func mutate(ctx context.Context, r repo.VacationRepo, c Cache, id uuid.UUID, fn func(*domain.Vacation) error) (domain.Vacation, error) {
	v, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Vacation{}, err
	}
	if err := fn(&v); err != nil {
		return domain.Vacation{}, err
	}
	saved, err := r.Update(ctx, v)
	if err != nil {
		return domain.Vacation{}, err
	}
	if c != nil {
		_ = c.DeleteVacation(ctx, id)
	}
	return saved, nil
}

// validateVacation enforces the required root fields shared by Create and
// UpdateRoot. Deliberately per-field only: startDate ≤ endDate is not
// checked, matching the established API behavior.
func validateVacation(v domain.Vacation) error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if v.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", domain.ErrValidation)
	}
	if v.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", domain.ErrValidation)
	}
	return nil
}
