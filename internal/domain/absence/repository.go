package absence

import (
	"context"
	"time"
)

// Repository - interface for the absences table
type Repository interface {
	Create(ctx context.Context, a Absence) (Absence, error)
	// GetByID resolves an absence together with its employee's name and
	// home restaurant.
	GetByID(ctx context.Context, id int64) (Absence, error)
	List(ctx context.Context, filter ListAbsencesFilter) ([]Absence, error)
	UpdateStatus(ctx context.Context, id int64, status Status, validatedBy *string) error
	// ListApprovedEmployeeIDs returns the ids of employees under an
	// approved absence covering the given date.
	ListApprovedEmployeeIDs(ctx context.Context, date time.Time) ([]int64, error)
}
