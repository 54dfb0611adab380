package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krooster/krooster-backend-go/internal/config"
	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/domain/shift"
)

type fakeEmployeeRepo struct {
	created []employee.Employee
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = int64(len(r.created) + 1)
	r.created = append(r.created, emp)
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	for _, e := range r.created {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return r.created, nil
}

func (r *fakeEmployeeRepo) ListActiveByRestaurant(ctx context.Context, restaurantID int64) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

type fakeShiftRepo struct {
	rows      []shift.HoursRow
	weekStart *time.Time
}

func (r *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}

func (r *fakeShiftRepo) GetByID(ctx context.Context, id int64) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *fakeShiftRepo) List(ctx context.Context, filter shift.ListShiftsFilter) ([]shift.Shift, error) {
	return nil, nil
}

func (r *fakeShiftRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func (r *fakeShiftRepo) ListScheduledInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]shift.Shift, error) {
	return nil, nil
}

func (r *fakeShiftRepo) CancelScheduledInRange(ctx context.Context, employeeID int64, start, end time.Time, reason string) (int64, error) {
	return 0, nil
}

func (r *fakeShiftRepo) ListBusyEmployeeIDs(ctx context.Context, date time.Time) ([]int64, error) {
	return nil, nil
}

func (r *fakeShiftRepo) HoursByEmployee(ctx context.Context, weekStart *time.Time) ([]shift.HoursRow, error) {
	r.weekStart = weekStart
	return r.rows, nil
}

func testRules() config.RulesConfig {
	return config.RulesConfig{
		MorningCutoffHour: 16,
		WeeklyHoursTarget: 48,
		WeeklyHoursMin:    40,
		WeeklyHoursMax:    52,
		WeekendMinSeniors: 2,
		CandidateCap:      3,
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreate_AppliesDefaults(t *testing.T) {
	t.Parallel()
	repo := &fakeEmployeeRepo{}
	svc := NewService(repo, &fakeShiftRepo{}, testRules())

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Alice",
		LastName:  "Martin",
		Positions: []string{"kitchen"},
	})

	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, employee.SeniorityJunior, created.Seniority)
	assert.Equal(t, employee.ShiftPreferenceFlexible, created.PreferredShift)
	assert.Equal(t, employee.EmploymentTypeFullTime, created.EmploymentType)
}

func TestCreate_RejectsBadDayOff(t *testing.T) {
	t.Parallel()
	svc := NewService(&fakeEmployeeRepo{}, &fakeShiftRepo{}, testRules())

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Alice",
		LastName:  "Martin",
		DaysOff:   []int{7},
	})

	assert.Error(t, err)
}

func TestWeeklyHours_TargetsAndStatus(t *testing.T) {
	t.Parallel()

	shifts := &fakeShiftRepo{rows: []shift.HoursRow{
		// Full-timer near the 48h target.
		{EmployeeID: 1, FirstName: "Alice", Seniority: "senior", EmploymentType: "full_time", ShiftCount: 5, TotalHours: 46.0},
		// Full-timer far under.
		{EmployeeID: 2, FirstName: "Bob", Seniority: "junior", EmploymentType: "full_time", ShiftCount: 2, TotalHours: 20.0},
		// Part-timer with a personal cap, over it.
		{EmployeeID: 3, FirstName: "Chloe", Seniority: "junior", EmploymentType: "part_time", MaxHoursPerWeek: ptr(24.0), ShiftCount: 6, TotalHours: 30.0},
		// Extra with no cap falls back to 20h.
		{EmployeeID: 4, FirstName: "David", Seniority: "junior", EmploymentType: "extra", ShiftCount: 3, TotalHours: 18.25},
	}}
	svc := NewService(&fakeEmployeeRepo{}, shifts, testRules())

	report, err := svc.WeeklyHours(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, report, 4)

	assert.Equal(t, 48.0, report[0].TargetHours)
	assert.Equal(t, "ok", report[0].Status)

	assert.Equal(t, "under", report[1].Status)

	assert.Equal(t, 24.0, report[2].TargetHours)
	assert.Equal(t, "over", report[2].Status)

	assert.Equal(t, 20.0, report[3].TargetHours)
	assert.Equal(t, 18.3, report[3].HoursScheduled)
	assert.Equal(t, "ok", report[3].Status)
}

func TestWeeklyHours_PassesWeekStart(t *testing.T) {
	t.Parallel()

	shifts := &fakeShiftRepo{}
	svc := NewService(&fakeEmployeeRepo{}, shifts, testRules())

	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	_, err := svc.WeeklyHours(context.Background(), &weekStart)

	require.NoError(t, err)
	require.NotNil(t, shifts.weekStart)
	assert.True(t, shifts.weekStart.Equal(weekStart))
}
