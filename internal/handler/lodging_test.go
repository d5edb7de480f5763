package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tripdesk/backend/internal/domain"
)

func TestCreateLodging_201_EmptyBodyAllowed(t *testing.T) {
	fixture := vacationFixture()
	h := newHTTPHandler(withLodgings(&mockLodgingServicer{
		add: func(_ context.Context, vacationID uuid.UUID, l domain.Lodging) (domain.Vacation, error) {
			assert.Equal(t, fixture.ID, vacationID)
			return fixture, nil
		},
	}))

	rec := doRequest(h, http.MethodPost, "/api/vacations/"+fixture.ID.String()+"/lodgings", jsonBody(t, map[string]any{}))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateLodging_422_BadCheckInDate(t *testing.T) {
	h := newHTTPHandler(withLodgings(&mockLodgingServicer{}))

	rec := doRequest(h, http.MethodPost, "/api/vacations/"+uuid.NewString()+"/lodgings", jsonBody(t, map[string]any{
		"name":        "Hotel Lutetia",
		"checkInDate": "next friday",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateLodging_404_UnknownLodging(t *testing.T) {
	h := newHTTPHandler(withLodgings(&mockLodgingServicer{
		update: func(_ context.Context, _, _ uuid.UUID, _ domain.Lodging) (domain.Vacation, error) {
			return domain.Vacation{}, domain.ErrNotFound
		},
	}))

	rec := doRequest(h, http.MethodPut,
		"/api/vacations/"+uuid.NewString()+"/lodgings/"+uuid.NewString(),
		jsonBody(t, map[string]any{"name": "Hotel Lutetia"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteLodging_200(t *testing.T) {
	fixture := vacationFixture()
	h := newHTTPHandler(withLodgings(&mockLodgingServicer{
		remove: func(_ context.Context, _, _ uuid.UUID) (domain.Vacation, error) {
			return fixture, nil
		},
	}))

	rec := doRequest(h, http.MethodDelete,
		"/api/vacations/"+fixture.ID.String()+"/lodgings/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
