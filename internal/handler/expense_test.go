package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/backend/internal/domain"
)

func TestCreateExpense_201_ReturnsCreatedExpenseOnly(t *testing.T) {
	vacationID := uuid.New()
	created := domain.Expense{ID: uuid.New(), Amount: 129.99, Category: domain.CategoryHotel, Description: "first night"}
	h := newHTTPHandler(withExpenses(&mockExpenseServicer{
		add: func(_ context.Context, vid uuid.UUID, e domain.Expense) (domain.Expense, error) {
			assert.Equal(t, vacationID, vid)
			assert.Equal(t, 129.99, e.Amount)
			return created, nil
		},
	}))

	rec := doRequest(h, http.MethodPost, "/api/vacations/"+vacationID.String()+"/expenses", jsonBody(t, map[string]any{
		"amount":      129.99,
		"category":    "hotel",
		"description": "first night",
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Expense
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, created.ID, resp.ID)
}

func TestCreateExpense_422_MissingAmount(t *testing.T) {
	h := newHTTPHandler(withExpenses(&mockExpenseServicer{}))

	rec := doRequest(h, http.MethodPost, "/api/vacations/"+uuid.NewString()+"/expenses", jsonBody(t, map[string]any{
		"category":    "hotel",
		"description": "first night",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec))
}

func TestCreateExpense_ZeroAmountAccepted(t *testing.T) {
	// An explicit zero is present; only a missing amount is rejected.
	h := newHTTPHandler(withExpenses(&mockExpenseServicer{
		add: func(_ context.Context, _ uuid.UUID, e domain.Expense) (domain.Expense, error) {
			assert.Zero(t, e.Amount)
			return e, nil
		},
	}))

	rec := doRequest(h, http.MethodPost, "/api/vacations/"+uuid.NewString()+"/expenses", jsonBody(t, map[string]any{
		"amount":      0,
		"category":    "other",
		"description": "comped",
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListExpenses_200(t *testing.T) {
	h := newHTTPHandler(withExpenses(&mockExpenseServicer{
		list: func(_ context.Context, _ uuid.UUID) ([]domain.Expense, error) {
			return []domain.Expense{
				{ID: uuid.New(), Amount: 10, Category: domain.CategoryGroceries, Description: "snacks"},
			}, nil
		},
	}))

	rec := doRequest(h, http.MethodGet, "/api/vacations/"+uuid.NewString()+"/expenses", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Expense
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 1)
}

func TestListExpenses_404_UnknownVacation(t *testing.T) {
	h := newHTTPHandler(withExpenses(&mockExpenseServicer{
		list: func(_ context.Context, _ uuid.UUID) ([]domain.Expense, error) {
			return nil, domain.ErrNotFound
		},
	}))

	rec := doRequest(h, http.MethodGet, "/api/vacations/"+uuid.NewString()+"/expenses", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateExpense_200_ReturnsWholeVacation(t *testing.T) {
	fixture := vacationFixture()
	h := newHTTPHandler(withExpenses(&mockExpenseServicer{
		update: func(_ context.Context, _, _ uuid.UUID, _ domain.Expense) (domain.Vacation, error) {
			return fixture, nil
		},
	}))

	rec := doRequest(h, http.MethodPut,
		"/api/vacations/"+fixture.ID.String()+"/expenses/"+uuid.NewString(),
		jsonBody(t, map[string]any{"amount": 99.0, "category": "car", "description": "rental"}))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Vacation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
}

func TestDeleteExpense_204(t *testing.T) {
	h := newHTTPHandler(withExpenses(&mockExpenseServicer{
		remove: func(_ context.Context, _, _ uuid.UUID) error { return nil },
	}))

	rec := doRequest(h, http.MethodDelete,
		"/api/vacations/"+uuid.NewString()+"/expenses/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteExpense_404_UnknownExpense(t *testing.T) {
	h := newHTTPHandler(withExpenses(&mockExpenseServicer{
		remove: func(_ context.Context, _, _ uuid.UUID) error { return domain.ErrNotFound },
	}))

	rec := doRequest(h, http.MethodDelete,
		"/api/vacations/"+uuid.NewString()+"/expenses/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
