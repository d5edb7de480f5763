package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/handler"
)

// Test doubles for each *Servicer interface. Set only the method fields your
// test needs; an unset field panics loudly if the handler reaches it.

type mockVacationServicer struct {
	create     func(ctx context.Context, v domain.Vacation) (domain.Vacation, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Vacation, error)
	list       func(ctx context.Context) ([]domain.Vacation, error)
	updateRoot func(ctx context.Context, id uuid.UUID, root domain.Vacation) (domain.Vacation, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockVacationServicer) Create(ctx context.Context, v domain.Vacation) (domain.Vacation, error) {
	return m.create(ctx, v)
}
func (m *mockVacationServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Vacation, error) {
	return m.getByID(ctx, id)
}
func (m *mockVacationServicer) List(ctx context.Context) ([]domain.Vacation, error) {
	return m.list(ctx)
}
func (m *mockVacationServicer) UpdateRoot(ctx context.Context, id uuid.UUID, root domain.Vacation) (domain.Vacation, error) {
	return m.updateRoot(ctx, id, root)
}
func (m *mockVacationServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.VacationServicer = (*mockVacationServicer)(nil)

type mockFlightServicer struct {
	add    func(ctx context.Context, vacationID uuid.UUID, f domain.Flight) (domain.Vacation, error)
	update func(ctx context.Context, vacationID, flightID uuid.UUID, f domain.Flight) (domain.Vacation, error)
	remove func(ctx context.Context, vacationID, flightID uuid.UUID) (domain.Vacation, error)
}

func (m *mockFlightServicer) Add(ctx context.Context, vacationID uuid.UUID, f domain.Flight) (domain.Vacation, error) {
	return m.add(ctx, vacationID, f)
}
func (m *mockFlightServicer) Update(ctx context.Context, vacationID, flightID uuid.UUID, f domain.Flight) (domain.Vacation, error) {
	return m.update(ctx, vacationID, flightID, f)
}
func (m *mockFlightServicer) Remove(ctx context.Context, vacationID, flightID uuid.UUID) (domain.Vacation, error) {
	return m.remove(ctx, vacationID, flightID)
}

var _ handler.FlightServicer = (*mockFlightServicer)(nil)

type mockLodgingServicer struct {
	add    func(ctx context.Context, vacationID uuid.UUID, l domain.Lodging) (domain.Vacation, error)
	update func(ctx context.Context, vacationID, lodgingID uuid.UUID, l domain.Lodging) (domain.Vacation, error)
	remove func(ctx context.Context, vacationID, lodgingID uuid.UUID) (domain.Vacation, error)
}

func (m *mockLodgingServicer) Add(ctx context.Context, vacationID uuid.UUID, l domain.Lodging) (domain.Vacation, error) {
	return m.add(ctx, vacationID, l)
}
func (m *mockLodgingServicer) Update(ctx context.Context, vacationID, lodgingID uuid.UUID, l domain.Lodging) (domain.Vacation, error) {
	return m.update(ctx, vacationID, lodgingID, l)
}
func (m *mockLodgingServicer) Remove(ctx context.Context, vacationID, lodgingID uuid.UUID) (domain.Vacation, error) {
	return m.remove(ctx, vacationID, lodgingID)
}

var _ handler.LodgingServicer = (*mockLodgingServicer)(nil)

type mockItineraryServicer struct {
	addDay       func(ctx context.Context, vacationID uuid.UUID, d domain.ItineraryDay) (domain.Vacation, error)
	updateDay    func(ctx context.Context, vacationID, dayID uuid.UUID, d domain.ItineraryDay) (domain.Vacation, error)
	removeDay    func(ctx context.Context, vacationID, dayID uuid.UUID) (domain.Vacation, error)
	addMarker    func(ctx context.Context, vacationID uuid.UUID, m domain.Marker) (domain.Vacation, error)
	updateMarker func(ctx context.Context, vacationID, dayID uuid.UUID, m domain.Marker) (domain.Vacation, error)
}

func (m *mockItineraryServicer) AddDay(ctx context.Context, vacationID uuid.UUID, d domain.ItineraryDay) (domain.Vacation, error) {
	return m.addDay(ctx, vacationID, d)
}
func (m *mockItineraryServicer) UpdateDay(ctx context.Context, vacationID, dayID uuid.UUID, d domain.ItineraryDay) (domain.Vacation, error) {
	return m.updateDay(ctx, vacationID, dayID, d)
}
func (m *mockItineraryServicer) RemoveDay(ctx context.Context, vacationID, dayID uuid.UUID) (domain.Vacation, error) {
	return m.removeDay(ctx, vacationID, dayID)
}
func (m *mockItineraryServicer) AddMarker(ctx context.Context, vacationID uuid.UUID, mk domain.Marker) (domain.Vacation, error) {
	return m.addMarker(ctx, vacationID, mk)
}
func (m *mockItineraryServicer) UpdateMarker(ctx context.Context, vacationID, dayID uuid.UUID, mk domain.Marker) (domain.Vacation, error) {
	return m.updateMarker(ctx, vacationID, dayID, mk)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

type mockExpenseServicer struct {
	add    func(ctx context.Context, vacationID uuid.UUID, e domain.Expense) (domain.Expense, error)
	list   func(ctx context.Context, vacationID uuid.UUID) ([]domain.Expense, error)
	update func(ctx context.Context, vacationID, expenseID uuid.UUID, e domain.Expense) (domain.Vacation, error)
	remove func(ctx context.Context, vacationID, expenseID uuid.UUID) error
}

func (m *mockExpenseServicer) Add(ctx context.Context, vacationID uuid.UUID, e domain.Expense) (domain.Expense, error) {
	return m.add(ctx, vacationID, e)
}
func (m *mockExpenseServicer) List(ctx context.Context, vacationID uuid.UUID) ([]domain.Expense, error) {
	return m.list(ctx, vacationID)
}
func (m *mockExpenseServicer) Update(ctx context.Context, vacationID, expenseID uuid.UUID, e domain.Expense) (domain.Vacation, error) {
	return m.update(ctx, vacationID, expenseID, e)
}
func (m *mockExpenseServicer) Remove(ctx context.Context, vacationID, expenseID uuid.UUID) error {
	return m.remove(ctx, vacationID, expenseID)
}

var _ handler.ExpenseServicer = (*mockExpenseServicer)(nil)

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

type mockPasswordVerifier struct {
	verify func(candidate string) bool
}

func (m *mockPasswordVerifier) Verify(candidate string) bool { return m.verify(candidate) }

var _ handler.PasswordVerifier = (*mockPasswordVerifier)(nil)

// ---- helpers ---------------------------------------------------------------

// serverOpt replaces one dependency on an otherwise-empty Server.
type serverOpt func(*deps)

type deps struct {
	vacations handler.VacationServicer
	flights   handler.FlightServicer
	lodgings  handler.LodgingServicer
	itinerary handler.ItineraryServicer
	expenses  handler.ExpenseServicer
	export    handler.ExportServicer
	password  handler.PasswordVerifier
}

func withVacations(v handler.VacationServicer) serverOpt { return func(d *deps) { d.vacations = v } }
func withFlights(f handler.FlightServicer) serverOpt     { return func(d *deps) { d.flights = f } }
func withLodgings(l handler.LodgingServicer) serverOpt   { return func(d *deps) { d.lodgings = l } }
func withItinerary(i handler.ItineraryServicer) serverOpt {
	return func(d *deps) { d.itinerary = i }
}
func withExpenses(e handler.ExpenseServicer) serverOpt { return func(d *deps) { d.expenses = e } }
func withExport(e handler.ExportServicer) serverOpt    { return func(d *deps) { d.export = e } }
func withPassword(p handler.PasswordVerifier) serverOpt {
	return func(d *deps) { d.password = p }
}

// newHTTPHandler wires a Server with the given mocks into the chi router,
// mirroring exactly how main.go wires it in production.
func newHTTPHandler(opts ...serverOpt) http.Handler {
	var d deps
	for _, opt := range opts {
		opt(&d)
	}
	return handler.NewServer(d.vacations, d.flights, d.lodgings, d.itinerary, d.expenses, d.export, d.password).Routes()
}

func vacationFixture() domain.Vacation {
	return domain.Vacation{
		ID:        uuid.New(),
		Name:      "Paris Summer",
		StartDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC),
		Flights:   []domain.Flight{},
		Lodgings:  []domain.Lodging{},
		Itinerary: []domain.ItineraryDay{},
		Expenses:  []domain.Expense{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// doRequest runs one request through the full router and returns the recorder.
func doRequest(h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeError pulls the code out of the uniform error body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error.Code
}
