package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/service"
)

func TestExportService_Export_OneRowPerExpense(t *testing.T) {
	v := validVacation()
	v.Expenses = []domain.Expense{
		{ID: uuid.New(), Amount: 420, Category: domain.CategoryFlight, Description: "outbound"},
		{ID: uuid.New(), Amount: 87.5, Category: domain.CategoryGroceries, Description: "market"},
	}
	svc := service.NewExportService(&mockVacationRepo{
		list: func(_ context.Context) ([]domain.Vacation, error) {
			return []domain.Vacation{v}, nil
		},
	})

	rows, err := svc.Export(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, v.ID.String(), row.VacationID)
		assert.Equal(t, "Paris Summer", row.VacationName)
		assert.Equal(t, "2024-07-01", row.VacationStartDate)
		assert.Equal(t, "2024-07-14", row.VacationEndDate)
	}
	assert.Equal(t, "outbound", rows[0].ExpenseDescription)
	assert.Equal(t, "market", rows[1].ExpenseDescription)
	assert.Equal(t, 420.0, rows[0].Amount)
}

func TestExportService_Export_ExpenselessVacationYieldsBaseRow(t *testing.T) {
	v := validVacation()
	svc := service.NewExportService(&mockVacationRepo{
		list: func(_ context.Context) ([]domain.Vacation, error) {
			return []domain.Vacation{v}, nil
		},
	})

	rows, err := svc.Export(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, v.ID.String(), rows[0].VacationID)
	assert.Empty(t, rows[0].ExpenseID)
	assert.Empty(t, rows[0].ExpenseCategory)
	assert.Zero(t, rows[0].Amount)
}

func TestExportService_Export_EmptyIsNonNil(t *testing.T) {
	svc := service.NewExportService(&mockVacationRepo{
		list: func(_ context.Context) ([]domain.Vacation, error) { return nil, nil },
	})

	rows, err := svc.Export(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExportService_Export_RepoError(t *testing.T) {
	svc := service.NewExportService(&mockVacationRepo{
		list: func(_ context.Context) ([]domain.Vacation, error) {
			return nil, errors.New("connection reset")
		},
	})

	_, err := svc.Export(context.Background())

	assert.Error(t, err)
}
