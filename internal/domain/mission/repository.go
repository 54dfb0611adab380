package mission

import "context"

// Repository - interface for the missions table
type Repository interface {
	Create(ctx context.Context, m Mission) (Mission, error)
	GetByID(ctx context.Context, id int64) (Mission, error)
	List(ctx context.Context, filter ListMissionsFilter) ([]Mission, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}
