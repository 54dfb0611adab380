package employee

import "context"

// Repository - interface for the employees table
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	// ListActiveByRestaurant returns the active employees whose home
	// restaurant is the given one, ordered by id.
	ListActiveByRestaurant(ctx context.Context, restaurantID int64) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id int64) error
}
