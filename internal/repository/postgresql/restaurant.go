package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/krooster/krooster-backend-go/internal/domain/restaurant"
	"github.com/krooster/krooster-backend-go/internal/pkg/database"
)

type restaurantRepositoryImpl struct {
	db *database.DB
}

func NewRestaurantRepository(db *database.DB) restaurant.Repository {
	return &restaurantRepositoryImpl{db: db}
}

// GetByID implements restaurant.Repository.
func (r *restaurantRepositoryImpl) GetByID(ctx context.Context, id int64) (restaurant.Restaurant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, address, opening_hours, closing_hours, closed_dates, created_at
		FROM restaurants
		WHERE id = $1
	`

	var rest restaurant.Restaurant
	err := q.QueryRow(ctx, query, id).Scan(
		&rest.ID,
		&rest.Name,
		&rest.Location,
		&rest.Address,
		&rest.OpeningHours,
		&rest.ClosingHours,
		&rest.ClosedDates,
		&rest.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return restaurant.Restaurant{}, restaurant.ErrRestaurantNotFound
		}
		return restaurant.Restaurant{}, err
	}

	return rest, nil
}

// List implements restaurant.Repository.
func (r *restaurantRepositoryImpl) List(ctx context.Context) ([]restaurant.Restaurant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, address, opening_hours, closing_hours, closed_dates, created_at
		FROM restaurants
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []restaurant.Restaurant
	for rows.Next() {
		var rest restaurant.Restaurant
		err := rows.Scan(
			&rest.ID,
			&rest.Name,
			&rest.Location,
			&rest.Address,
			&rest.OpeningHours,
			&rest.ClosingHours,
			&rest.ClosedDates,
			&rest.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, rows.Err()
}
