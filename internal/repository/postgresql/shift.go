package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/krooster/krooster-backend-go/internal/domain/shift"
	"github.com/krooster/krooster-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	s.id, s.employee_id, s.restaurant_id, s.date, s.start_time, s.end_time,
	s.position, s.is_mission, s.status, s.notes, s.created_at,
	e.first_name, e.last_name, r.name
`

// Duration in hours for a "HH:MM" start/end pair, wrapping overnight shifts
// past midnight.
const shiftHoursExpr = `
	CASE WHEN (split_part(s.end_time, ':', 1)::int + split_part(s.end_time, ':', 2)::int / 60.0)
	        - (split_part(s.start_time, ':', 1)::int + split_part(s.start_time, ':', 2)::int / 60.0) < 0
	     THEN (split_part(s.end_time, ':', 1)::int + split_part(s.end_time, ':', 2)::int / 60.0)
	        - (split_part(s.start_time, ':', 1)::int + split_part(s.start_time, ':', 2)::int / 60.0) + 24
	     ELSE (split_part(s.end_time, ':', 1)::int + split_part(s.end_time, ':', 2)::int / 60.0)
	        - (split_part(s.start_time, ':', 1)::int + split_part(s.start_time, ':', 2)::int / 60.0)
	END
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID,
		&s.EmployeeID,
		&s.RestaurantID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.Position,
		&s.IsMission,
		&s.Status,
		&s.Notes,
		&s.CreatedAt,
		&s.EmployeeFirstName,
		&s.EmployeeLastName,
		&s.RestaurantName,
	)
	if err != nil {
		return shift.Shift{}, err
	}
	return s, nil
}

// Create implements shift.Repository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			employee_id, restaurant_id, date, start_time, end_time,
			position, is_mission, status, notes, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, NOW()
		)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID,
		s.RestaurantID,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.Position,
		s.IsMission,
		s.Status,
		s.Notes,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return shift.Shift{}, err
	}

	return s, nil
}

// GetByID implements shift.Repository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id int64) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		INNER JOIN employees e ON s.employee_id = e.id
		INNER JOIN restaurants r ON s.restaurant_id = r.id
		WHERE s.id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	return s, nil
}

// List implements shift.Repository.
func (r *shiftRepositoryImpl) List(ctx context.Context, filter shift.ListShiftsFilter) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.EmployeeID != nil {
		conditions = append(conditions, "s.employee_id = "+arg(*filter.EmployeeID))
	}
	if filter.RestaurantID != nil {
		conditions = append(conditions, "s.restaurant_id = "+arg(*filter.RestaurantID))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "s.date >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "s.date <= "+arg(*filter.EndDate))
	}
	if filter.Status != nil {
		conditions = append(conditions, "s.status = "+arg(*filter.Status))
	}

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		INNER JOIN employees e ON s.employee_id = e.id
		INNER JOIN restaurants r ON s.restaurant_id = r.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.date, s.start_time, s.id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

// Delete implements shift.Repository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM shifts
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// ListScheduledInRange implements shift.Repository.
func (r *shiftRepositoryImpl) ListScheduledInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		INNER JOIN employees e ON s.employee_id = e.id
		INNER JOIN restaurants r ON s.restaurant_id = r.id
		WHERE s.employee_id = $1 AND s.status = 'scheduled'
		  AND s.date >= $2 AND s.date <= $3
		ORDER BY s.date, s.start_time, s.id
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

// CancelScheduledInRange implements shift.Repository.
func (r *shiftRepositoryImpl) CancelScheduledInRange(ctx context.Context, employeeID int64, start, end time.Time, reason string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = 'cancelled', notes = $4
		WHERE employee_id = $1 AND status = 'scheduled'
		  AND date >= $2 AND date <= $3
	`

	commandTag, err := q.Exec(ctx, query, employeeID, start, end, reason)
	if err != nil {
		return 0, err
	}

	return commandTag.RowsAffected(), nil
}

// ListBusyEmployeeIDs implements shift.Repository.
func (r *shiftRepositoryImpl) ListBusyEmployeeIDs(ctx context.Context, date time.Time) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_id
		FROM shifts
		WHERE date = $1 AND status != 'cancelled'
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// HoursByEmployee implements shift.Repository.
func (r *shiftRepositoryImpl) HoursByEmployee(ctx context.Context, weekStart *time.Time) ([]shift.HoursRow, error) {
	q := GetQuerier(ctx, r.db)

	join := `
		LEFT JOIN shifts s ON s.employee_id = e.id AND s.status != 'cancelled'
	`
	args := []interface{}{}
	if weekStart != nil {
		join = `
		LEFT JOIN shifts s ON s.employee_id = e.id AND s.status != 'cancelled'
			AND s.date >= $1 AND s.date < $1 + INTERVAL '7 days'
	`
		args = append(args, *weekStart)
	}

	query := `
		SELECT e.id, e.first_name, e.last_name, e.seniority, e.employment_type, e.max_hours_per_week,
		       COUNT(s.id),
		       COALESCE(SUM(` + shiftHoursExpr + `), 0)
		FROM employees e
	` + join + `
		WHERE e.active = true
		GROUP BY e.id, e.first_name, e.last_name, e.seniority, e.employment_type, e.max_hours_per_week
		ORDER BY e.id
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []shift.HoursRow
	for rows.Next() {
		var row shift.HoursRow
		err := rows.Scan(
			&row.EmployeeID,
			&row.FirstName,
			&row.LastName,
			&row.Seniority,
			&row.EmploymentType,
			&row.MaxHoursPerWeek,
			&row.ShiftCount,
			&row.TotalHours,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
