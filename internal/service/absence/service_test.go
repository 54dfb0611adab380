package absence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krooster/krooster-backend-go/internal/domain/absence"
	"github.com/krooster/krooster-backend-go/internal/domain/employee"
)

type fakeAbsenceRepo struct {
	nextID   int64
	absences map[int64]absence.Absence
}

func (r *fakeAbsenceRepo) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	r.absences[a.ID] = a
	return a, nil
}

func (r *fakeAbsenceRepo) GetByID(ctx context.Context, id int64) (absence.Absence, error) {
	a, ok := r.absences[id]
	if !ok {
		return absence.Absence{}, absence.ErrAbsenceNotFound
	}
	return a, nil
}

func (r *fakeAbsenceRepo) List(ctx context.Context, filter absence.ListAbsencesFilter) ([]absence.Absence, error) {
	var out []absence.Absence
	for _, a := range r.absences {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAbsenceRepo) UpdateStatus(ctx context.Context, id int64, status absence.Status, validatedBy *string) error {
	a, ok := r.absences[id]
	if !ok {
		return absence.ErrAbsenceNotFound
	}
	a.Status = status
	a.ValidatedBy = validatedBy
	r.absences[id] = a
	return nil
}

func (r *fakeAbsenceRepo) ListApprovedEmployeeIDs(ctx context.Context, date time.Time) ([]int64, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return nil, nil
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

func fixture() (*Service, *fakeAbsenceRepo) {
	absences := &fakeAbsenceRepo{absences: map[int64]absence.Absence{}}
	employees := &fakeEmployeeRepo{employees: map[int64]employee.Employee{
		1: {ID: 1, FirstName: "Alice", Active: true},
	}}
	return NewService(absences, employees), absences
}

func TestCreate_StartsPending(t *testing.T) {
	t.Parallel()
	svc, _ := fixture()

	created, err := svc.Create(context.Background(), absence.CreateAbsenceRequest{
		EmployeeID: 1,
		Type:       "sick_leave",
		StartDate:  "2025-01-06",
		EndDate:    "2025-01-07",
	})

	require.NoError(t, err)
	assert.Equal(t, absence.StatusPending, created.Status)
	assert.Equal(t, absence.TypeSickLeave, created.Type)
	assert.Equal(t, "2025-01-06", created.StartDate.Format("2006-01-02"))
}

func TestCreate_UnknownEmployee(t *testing.T) {
	t.Parallel()
	svc, _ := fixture()

	_, err := svc.Create(context.Background(), absence.CreateAbsenceRequest{
		EmployeeID: 99,
		Type:       "paid_leave",
		StartDate:  "2025-01-06",
		EndDate:    "2025-01-07",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate_RejectsInvertedRange(t *testing.T) {
	t.Parallel()
	svc, _ := fixture()

	_, err := svc.Create(context.Background(), absence.CreateAbsenceRequest{
		EmployeeID: 1,
		Type:       "paid_leave",
		StartDate:  "2025-01-07",
		EndDate:    "2025-01-06",
	})

	assert.Error(t, err)
}

func TestApprove_PendingOnly(t *testing.T) {
	t.Parallel()
	svc, repo := fixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateAbsenceRequest{
		EmployeeID: 1,
		Type:       "training",
		StartDate:  "2025-01-06",
		EndDate:    "2025-01-07",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, created.ID, "manager")
	require.NoError(t, err)
	assert.Equal(t, absence.StatusApproved, approved.Status)
	require.NotNil(t, approved.ValidatedBy)
	assert.Equal(t, "manager", *approved.ValidatedBy)
	assert.Equal(t, absence.StatusApproved, repo.absences[created.ID].Status)

	// A second transition is refused.
	_, err = svc.Reject(ctx, created.ID, "manager")
	assert.ErrorIs(t, err, absence.ErrAbsenceAlreadyProcessed)
}

func TestReject(t *testing.T) {
	t.Parallel()
	svc, _ := fixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateAbsenceRequest{
		EmployeeID: 1,
		Type:       "unpaid_leave",
		StartDate:  "2025-01-06",
		EndDate:    "2025-01-07",
	})
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, created.ID, "manager")
	require.NoError(t, err)
	assert.Equal(t, absence.StatusRejected, rejected.Status)
}

func TestApprove_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := fixture()

	_, err := svc.Approve(context.Background(), 404, "manager")

	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
}
