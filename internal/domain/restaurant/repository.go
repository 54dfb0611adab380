package restaurant

import "context"

// Repository - interface for the restaurants table
type Repository interface {
	GetByID(ctx context.Context, id int64) (Restaurant, error)
	List(ctx context.Context) ([]Restaurant, error)
}
