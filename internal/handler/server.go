// Package handler implements the HTTP handlers for the Tripdesk API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (vacation.go, flight.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripdesk/backend/internal/domain"
)

// VacationServicer defines the business operations the root vacation
// handlers depend on. Defining the interface here (in the consumer package)
// follows the Go convention: "accept interfaces, return concrete types". It
// lets handler tests inject a mock without touching the database or service
// layer. The same applies to the other *Servicer interfaces below.
type VacationServicer interface {
	Create(ctx context.Context, v domain.Vacation) (domain.Vacation, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vacation, error)
	List(ctx context.Context) ([]domain.Vacation, error)
	UpdateRoot(ctx context.Context, id uuid.UUID, root domain.Vacation) (domain.Vacation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FlightServicer defines the business operations the flight handlers depend on.
type FlightServicer interface {
	Add(ctx context.Context, vacationID uuid.UUID, f domain.Flight) (domain.Vacation, error)
	Update(ctx context.Context, vacationID, flightID uuid.UUID, f domain.Flight) (domain.Vacation, error)
	Remove(ctx context.Context, vacationID, flightID uuid.UUID) (domain.Vacation, error)
}

// LodgingServicer defines the business operations the lodging handlers depend on.
type LodgingServicer interface {
	Add(ctx context.Context, vacationID uuid.UUID, l domain.Lodging) (domain.Vacation, error)
	Update(ctx context.Context, vacationID, lodgingID uuid.UUID, l domain.Lodging) (domain.Vacation, error)
	Remove(ctx context.Context, vacationID, lodgingID uuid.UUID) (domain.Vacation, error)
}

// ItineraryServicer defines the business operations the itinerary and marker
// handlers depend on.
type ItineraryServicer interface {
	AddDay(ctx context.Context, vacationID uuid.UUID, d domain.ItineraryDay) (domain.Vacation, error)
	UpdateDay(ctx context.Context, vacationID, dayID uuid.UUID, d domain.ItineraryDay) (domain.Vacation, error)
	RemoveDay(ctx context.Context, vacationID, dayID uuid.UUID) (domain.Vacation, error)
	AddMarker(ctx context.Context, vacationID uuid.UUID, m domain.Marker) (domain.Vacation, error)
	UpdateMarker(ctx context.Context, vacationID, dayID uuid.UUID, m domain.Marker) (domain.Vacation, error)
}

// ExpenseServicer defines the business operations the expense handlers depend on.
type ExpenseServicer interface {
	Add(ctx context.Context, vacationID uuid.UUID, e domain.Expense) (domain.Expense, error)
	List(ctx context.Context, vacationID uuid.UUID) ([]domain.Expense, error)
	Update(ctx context.Context, vacationID, expenseID uuid.UUID, e domain.Expense) (domain.Vacation, error)
	Remove(ctx context.Context, vacationID, expenseID uuid.UUID) error
}

// ExportServicer defines the business operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// PasswordVerifier defines the shared-secret check the auth handler depends on.
type PasswordVerifier interface {
	Verify(candidate string) bool
}

// Server holds the dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	vacations VacationServicer
	flights   FlightServicer
	lodgings  LodgingServicer
	itinerary ItineraryServicer
	expenses  ExpenseServicer
	export    ExportServicer
	password  PasswordVerifier
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	vacations VacationServicer,
	flights FlightServicer,
	lodgings LodgingServicer,
	itinerary ItineraryServicer,
	expenses ExpenseServicer,
	export ExportServicer,
	password PasswordVerifier,
) *Server {
	return &Server{
		vacations: vacations,
		flights:   flights,
		lodgings:  lodgings,
		itinerary: itinerary,
		expenses:  expenses,
		export:    export,
		password:  password,
	}
}
