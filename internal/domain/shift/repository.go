package shift

import (
	"context"
	"time"
)

// HoursRow is the per-employee aggregation backing the weekly hours report.
// Employees without any shift in the window still appear with zero hours.
type HoursRow struct {
	EmployeeID      int64
	FirstName       string
	LastName        string
	Seniority       string
	EmploymentType  string
	MaxHoursPerWeek *float64
	ShiftCount      int
	TotalHours      float64
}

// Repository - interface for the shifts table
type Repository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id int64) (Shift, error)
	List(ctx context.Context, filter ListShiftsFilter) ([]Shift, error)
	Delete(ctx context.Context, id int64) error

	// ListScheduledInRange returns the employee's shifts with status
	// 'scheduled' whose date falls within [start, end], ordered by date.
	ListScheduledInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]Shift, error)
	// CancelScheduledInRange flips the employee's 'scheduled' shifts in
	// [start, end] to 'cancelled', recording the reason in notes, and
	// returns how many rows changed. Already-cancelled shifts are left
	// untouched.
	CancelScheduledInRange(ctx context.Context, employeeID int64, start, end time.Time, reason string) (int64, error)
	// ListBusyEmployeeIDs returns the ids of employees holding any
	// non-cancelled shift on the given date.
	ListBusyEmployeeIDs(ctx context.Context, date time.Time) ([]int64, error)
	// HoursByEmployee aggregates non-cancelled shift hours per active
	// employee, optionally restricted to the 7 days starting at weekStart.
	HoursByEmployee(ctx context.Context, weekStart *time.Time) ([]HoursRow, error)
}
