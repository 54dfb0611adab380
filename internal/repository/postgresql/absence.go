package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/krooster/krooster-backend-go/internal/domain/absence"
	"github.com/krooster/krooster-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.Repository {
	return &absenceRepositoryImpl{db: db}
}

const absenceColumns = `
	a.id, a.employee_id, a.type, a.start_date, a.end_date, a.status,
	a.comment, a.validated_by, a.validation_date, a.created_at,
	e.first_name, e.last_name, e.restaurant_id
`

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var a absence.Absence
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Type,
		&a.StartDate,
		&a.EndDate,
		&a.Status,
		&a.Comment,
		&a.ValidatedBy,
		&a.ValidationDate,
		&a.CreatedAt,
		&a.EmployeeFirstName,
		&a.EmployeeLastName,
		&a.EmployeeRestaurantID,
	)
	if err != nil {
		return absence.Absence{}, err
	}
	return a, nil
}

// Create implements absence.Repository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (
			employee_id, type, start_date, end_date, status, comment, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW()
		)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID,
		a.Type,
		a.StartDate,
		a.EndDate,
		a.Status,
		a.Comment,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return absence.Absence{}, err
	}

	return a, nil
}

// GetByID implements absence.Repository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id int64) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		INNER JOIN employees e ON a.employee_id = e.id
		WHERE a.id = $1
	`

	a, err := scanAbsence(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Absence{}, absence.ErrAbsenceNotFound
		}
		return absence.Absence{}, err
	}

	return a, nil
}

// List implements absence.Repository.
func (r *absenceRepositoryImpl) List(ctx context.Context, filter absence.ListAbsencesFilter) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.EmployeeID != nil {
		conditions = append(conditions, "a.employee_id = "+arg(*filter.EmployeeID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "a.status = "+arg(*filter.Status))
	}

	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		INNER JOIN employees e ON a.employee_id = e.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.start_date DESC, a.id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}

	return absences, rows.Err()
}

// UpdateStatus implements absence.Repository.
func (r *absenceRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status absence.Status, validatedBy *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absences
		SET status = $2, validated_by = $3, validation_date = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, validatedBy)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absence.ErrAbsenceNotFound
	}

	return nil
}

// ListApprovedEmployeeIDs implements absence.Repository.
func (r *absenceRepositoryImpl) ListApprovedEmployeeIDs(ctx context.Context, date time.Time) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_id
		FROM absences
		WHERE status = 'approved' AND start_date <= $1 AND end_date >= $1
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
