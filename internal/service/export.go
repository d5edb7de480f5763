package service

import (
	"context"
	"fmt"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/repo"
)

// ExportService assembles a flat expense report across all vacations.
type ExportService struct {
	vacations repo.VacationRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(r repo.VacationRepo) *ExportService {
	return &ExportService{vacations: r}
}

// Export returns one ExportRow per expense across all vacations.
// Vacations with no expenses contribute one row with empty expense fields.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	vacations, err := s.vacations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, v := range vacations {
		base := domain.ExportRow{
			VacationID:        v.ID.String(),
			VacationName:      v.Name,
			VacationStartDate: v.StartDate.Format("2006-01-02"),
			VacationEndDate:   v.EndDate.Format("2006-01-02"),
		}
		if len(v.Expenses) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, e := range v.Expenses {
			row := base
			row.ExpenseID = e.ID.String()
			row.ExpenseCategory = string(e.Category)
			row.ExpenseDescription = e.Description
			row.Amount = e.Amount
			rows = append(rows, row)
		}
	}
	return rows, nil
}
