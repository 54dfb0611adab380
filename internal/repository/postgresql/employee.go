package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.first_name, e.last_name, e.phone, e.email, e.restaurant_id, r.name,
	e.is_mobile, e.positions, e.active, e.hire_date, e.days_off,
	e.preferred_shift, e.employment_type, e.max_hours_per_week, e.seniority, e.created_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var daysOff []int32

	err := row.Scan(
		&emp.ID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Phone,
		&emp.Email,
		&emp.RestaurantID,
		&emp.RestaurantName,
		&emp.IsMobile,
		&emp.Positions,
		&emp.Active,
		&emp.HireDate,
		&daysOff,
		&emp.PreferredShift,
		&emp.EmploymentType,
		&emp.MaxHoursPerWeek,
		&emp.Seniority,
		&emp.CreatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.DaysOff = make([]int, 0, len(daysOff))
	for _, d := range daysOff {
		emp.DaysOff = append(emp.DaysOff, int(d))
	}

	return emp, nil
}

func toInt32Slice(values []int) []int32 {
	out := make([]int32, 0, len(values))
	for _, v := range values {
		out = append(out, int32(v))
	}
	return out
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			first_name, last_name, phone, email, restaurant_id,
			is_mobile, positions, active, hire_date, days_off,
			preferred_shift, employment_type, max_hours_per_week, seniority,
			created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14,
			NOW()
		)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Phone,
		emp.Email,
		emp.RestaurantID,
		emp.IsMobile,
		emp.Positions,
		emp.Active,
		emp.HireDate,
		toInt32Slice(emp.DaysOff),
		emp.PreferredShift,
		emp.EmploymentType,
		emp.MaxHoursPerWeek,
		emp.Seniority,
	).Scan(&emp.ID, &emp.CreatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN restaurants r ON e.restaurant_id = r.id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN restaurants r ON e.restaurant_id = r.id
	`
	if activeOnly {
		query += ` WHERE e.active = true`
	}
	query += ` ORDER BY e.id`

	return r.queryEmployees(ctx, q, query)
}

// ListActiveByRestaurant implements employee.Repository.
func (r *employeeRepositoryImpl) ListActiveByRestaurant(ctx context.Context, restaurantID int64) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN restaurants r ON e.restaurant_id = r.id
		WHERE e.active = true AND e.restaurant_id = $1
		ORDER BY e.id
	`

	return r.queryEmployees(ctx, q, query, restaurantID)
}

func (r *employeeRepositoryImpl) queryEmployees(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]employee.Employee, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.Repository. Only the provided fields change.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if req.FirstName != nil {
		sets = append(sets, "first_name = "+arg(*req.FirstName))
	}
	if req.LastName != nil {
		sets = append(sets, "last_name = "+arg(*req.LastName))
	}
	if req.Phone != nil {
		sets = append(sets, "phone = "+arg(*req.Phone))
	}
	if req.Email != nil {
		sets = append(sets, "email = "+arg(*req.Email))
	}
	if req.RestaurantID != nil {
		sets = append(sets, "restaurant_id = "+arg(*req.RestaurantID))
	}
	if req.IsMobile != nil {
		sets = append(sets, "is_mobile = "+arg(*req.IsMobile))
	}
	if req.Positions != nil {
		sets = append(sets, "positions = "+arg(req.Positions))
	}
	if req.Active != nil {
		sets = append(sets, "active = "+arg(*req.Active))
	}
	if req.DaysOff != nil {
		sets = append(sets, "days_off = "+arg(toInt32Slice(req.DaysOff)))
	}
	if req.PreferredShift != nil {
		sets = append(sets, "preferred_shift = "+arg(*req.PreferredShift))
	}
	if req.EmploymentType != nil {
		sets = append(sets, "employment_type = "+arg(*req.EmploymentType))
	}
	if req.MaxHoursPerWeek != nil {
		sets = append(sets, "max_hours_per_week = "+arg(*req.MaxHoursPerWeek))
	}
	if req.Seniority != nil {
		sets = append(sets, "seniority = "+arg(*req.Seniority))
	}

	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE employees SET " + strings.Join(sets, ", ") + " WHERE id = " + arg(req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.Repository. Employees are deactivated, not
// removed, so historical shifts keep their reference.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET active = false
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
