package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/krooster/krooster-backend-go/internal/domain/mission"
	"github.com/krooster/krooster-backend-go/internal/pkg/database"
)

type missionRepositoryImpl struct {
	db *database.DB
}

func NewMissionRepository(db *database.DB) mission.Repository {
	return &missionRepositoryImpl{db: db}
}

const missionColumns = `
	m.id, m.employee_id, m.restaurant_id, m.start_date, m.end_date,
	m.status, m.notes, m.created_at,
	e.first_name, e.last_name, r.name
`

func scanMission(row pgx.Row) (mission.Mission, error) {
	var m mission.Mission
	err := row.Scan(
		&m.ID,
		&m.EmployeeID,
		&m.RestaurantID,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.EmployeeFirstName,
		&m.EmployeeLastName,
		&m.RestaurantName,
	)
	if err != nil {
		return mission.Mission{}, err
	}
	return m, nil
}

// Create implements mission.Repository.
func (r *missionRepositoryImpl) Create(ctx context.Context, m mission.Mission) (mission.Mission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO missions (
			employee_id, restaurant_id, start_date, end_date, status, notes, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW()
		)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		m.EmployeeID,
		m.RestaurantID,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.Notes,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return mission.Mission{}, err
	}

	return m, nil
}

// GetByID implements mission.Repository.
func (r *missionRepositoryImpl) GetByID(ctx context.Context, id int64) (mission.Mission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + missionColumns + `
		FROM missions m
		INNER JOIN employees e ON m.employee_id = e.id
		INNER JOIN restaurants r ON m.restaurant_id = r.id
		WHERE m.id = $1
	`

	m, err := scanMission(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mission.Mission{}, mission.ErrMissionNotFound
		}
		return mission.Mission{}, err
	}

	return m, nil
}

// List implements mission.Repository.
func (r *missionRepositoryImpl) List(ctx context.Context, filter mission.ListMissionsFilter) ([]mission.Mission, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.EmployeeID != nil {
		conditions = append(conditions, "m.employee_id = "+arg(*filter.EmployeeID))
	}
	if filter.RestaurantID != nil {
		conditions = append(conditions, "m.restaurant_id = "+arg(*filter.RestaurantID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "m.status = "+arg(*filter.Status))
	}

	query := `
		SELECT ` + missionColumns + `
		FROM missions m
		INNER JOIN employees e ON m.employee_id = e.id
		INNER JOIN restaurants r ON m.restaurant_id = r.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY m.start_date DESC, m.id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var missions []mission.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}

	return missions, rows.Err()
}

// UpdateStatus implements mission.Repository.
func (r *missionRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status mission.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE missions
		SET status = $2
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return mission.ErrMissionNotFound
	}

	return nil
}
