// Package repo contains all database access logic for the Tripdesk API.
// A vacation is persisted as one row: root fields as columns, the four child
// collections embedded together in a single jsonb document. Every mutation
// replaces the whole document — there is no partial subdocument commit.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripdesk/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// VacationRepo defines the persistence operations for the vacation aggregate.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type VacationRepo interface {
	// Create inserts a new vacation and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, v domain.Vacation) (domain.Vacation, error)

	// GetByID retrieves a single vacation, children included, by its UUID
	// primary key. Returns domain.ErrNotFound if no vacation with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vacation, error)

	// List returns all vacations ordered by start_date descending.
	List(ctx context.Context) ([]domain.Vacation, error)

	// Update replaces the root fields and the whole child document of an
	// existing vacation and returns the updated record.
	// Returns domain.ErrNotFound if no vacation with that ID exists.
	Update(ctx context.Context, v domain.Vacation) (domain.Vacation, error)

	// Delete removes a vacation and, by embedding, all its children.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// vacationDoc is the JSON shape of the embedded child collections as stored
// in the doc column. Child IDs are assigned by the domain layer before the
// document reaches this package.
type vacationDoc struct {
	Flights   []domain.Flight       `json:"flights"`
	Lodgings  []domain.Lodging      `json:"lodgings"`
	Itinerary []domain.ItineraryDay `json:"itinerary"`
	Expenses  []domain.Expense      `json:"expenses"`
}

// pgVacationRepo is the Postgres implementation of VacationRepo.
type pgVacationRepo struct {
	db db
}

// NewVacationRepo constructs a VacationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVacationRepo(db db) VacationRepo {
	return &pgVacationRepo{db: db}
}

// Create inserts a new vacation row and returns the full persisted record.
func (r *pgVacationRepo) Create(ctx context.Context, v domain.Vacation) (domain.Vacation, error) {
	const q = `
		INSERT INTO vacations (name, start_date, end_date, doc)
		VALUES (@name, @start_date, @end_date, @doc)
		RETURNING id, name, start_date, end_date, doc, created_at, updated_at`

	doc, err := marshalDoc(v)
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("repo.VacationRepo.Create: %w", err)
	}

	args := pgx.NamedArgs{
		"name":       v.Name,
		"start_date": v.StartDate,
		"end_date":   v.EndDate,
		"doc":        doc,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVacation(row)
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("repo.VacationRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a vacation by primary key.
func (r *pgVacationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Vacation, error) {
	const q = `
		SELECT id, name, start_date, end_date, doc, created_at, updated_at
		FROM vacations
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanVacation(row)
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("repo.VacationRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all vacations ordered by start_date descending (most recent first).
func (r *pgVacationRepo) List(ctx context.Context) ([]domain.Vacation, error) {
	const q = `
		SELECT id, name, start_date, end_date, doc, created_at, updated_at
		FROM vacations
		ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VacationRepo.List: %w", err)
	}
	defer rows.Close()

	var vacations []domain.Vacation
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VacationRepo.List: scan: %w", err)
		}
		vacations = append(vacations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VacationRepo.List: rows: %w", err)
	}

	return vacations, nil
}

// Update replaces the root fields and the child document in one statement,
// so the amended aggregate is committed atomically or not at all.
func (r *pgVacationRepo) Update(ctx context.Context, v domain.Vacation) (domain.Vacation, error) {
	const q = `
		UPDATE vacations
		SET name       = @name,
		    start_date = @start_date,
		    end_date   = @end_date,
		    doc        = @doc,
		    updated_at = now()
		WHERE id = @id
		RETURNING id, name, start_date, end_date, doc, created_at, updated_at`

	doc, err := marshalDoc(v)
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("repo.VacationRepo.Update: %w", err)
	}

	args := pgx.NamedArgs{
		"id":         v.ID,
		"name":       v.Name,
		"start_date": v.StartDate,
		"end_date":   v.EndDate,
		"doc":        doc,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVacation(row)
	if err != nil {
		return domain.Vacation{}, fmt.Errorf("repo.VacationRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a vacation by primary key.
func (r *pgVacationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM vacations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.VacationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.VacationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// marshalDoc serializes the child collections of v into the jsonb document.
// Nil slices are normalized to empty so the stored document always carries
// all four arrays.
func marshalDoc(v domain.Vacation) ([]byte, error) {
	d := vacationDoc{
		Flights:   v.Flights,
		Lodgings:  v.Lodgings,
		Itinerary: v.Itinerary,
		Expenses:  v.Expenses,
	}
	if d.Flights == nil {
		d.Flights = []domain.Flight{}
	}
	if d.Lodgings == nil {
		d.Lodgings = []domain.Lodging{}
	}
	if d.Itinerary == nil {
		d.Itinerary = []domain.ItineraryDay{}
	}
	if d.Expenses == nil {
		d.Expenses = []domain.Expense{}
	}
	return json.Marshal(d)
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanVacation to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanVacation maps a single database row into a domain.Vacation.
// It handles the UUID and date conversions and unpacks the jsonb document
// back into the child collections.
func scanVacation(s scanner) (domain.Vacation, error) {
	var (
		v     domain.Vacation
		id    pgtype.UUID
		start pgtype.Date
		end   pgtype.Date
		raw   []byte
	)

	err := s.Scan(&id, &v.Name, &start, &end, &raw, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vacation{}, domain.ErrNotFound
		}
		return domain.Vacation{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	v.StartDate = start.Time
	v.EndDate = end.Time

	var d vacationDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return domain.Vacation{}, fmt.Errorf("unmarshal doc: %w", err)
	}
	v.Flights = d.Flights
	v.Lodgings = d.Lodgings
	v.Itinerary = d.Itinerary
	v.Expenses = d.Expenses
	if v.Flights == nil {
		v.Flights = []domain.Flight{}
	}
	if v.Lodgings == nil {
		v.Lodgings = []domain.Lodging{}
	}
	if v.Itinerary == nil {
		v.Itinerary = []domain.ItineraryDay{}
	}
	if v.Expenses == nil {
		v.Expenses = []domain.Expense{}
	}

	return v, nil
}
