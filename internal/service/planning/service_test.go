package planning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krooster/krooster-backend-go/internal/domain/absence"
	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/domain/planning"
	"github.com/krooster/krooster-backend-go/internal/domain/restaurant"
	"github.com/krooster/krooster-backend-go/internal/domain/shift"
	"github.com/krooster/krooster-backend-go/internal/pkg/email"
)

// ===== FAKES =====

// fakeTxRunner runs the unit of work directly; the fakes below mutate
// in-memory state, so there is nothing to roll back.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAbsenceRepo struct {
	absences map[int64]absence.Absence
}

func (r *fakeAbsenceRepo) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
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
	return nil, nil
}

func (r *fakeAbsenceRepo) UpdateStatus(ctx context.Context, id int64, status absence.Status, validatedBy *string) error {
	a, ok := r.absences[id]
	if !ok {
		return absence.ErrAbsenceNotFound
	}
	a.Status = status
	r.absences[id] = a
	return nil
}

func (r *fakeAbsenceRepo) ListApprovedEmployeeIDs(ctx context.Context, date time.Time) ([]int64, error) {
	var ids []int64
	for _, a := range r.absences {
		if a.Status == absence.StatusApproved && a.Covers(date) {
			ids = append(ids, a.EmployeeID)
		}
	}
	return ids, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	if !activeOnly {
		return r.employees, nil
	}
	var out []employee.Employee
	for _, e := range r.employees {
		if e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListActiveByRestaurant(ctx context.Context, restaurantID int64) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.Active && e.RestaurantID != nil && *e.RestaurantID == restaurantID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

type fakeRestaurantRepo struct {
	restaurants []restaurant.Restaurant
}

func (r *fakeRestaurantRepo) GetByID(ctx context.Context, id int64) (restaurant.Restaurant, error) {
	for _, rest := range r.restaurants {
		if rest.ID == id {
			return rest, nil
		}
	}
	return restaurant.Restaurant{}, restaurant.ErrRestaurantNotFound
}

func (r *fakeRestaurantRepo) List(ctx context.Context) ([]restaurant.Restaurant, error) {
	return r.restaurants, nil
}

type fakeShiftRepo struct {
	shifts []shift.Shift
}

func (r *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}

func (r *fakeShiftRepo) GetByID(ctx context.Context, id int64) (shift.Shift, error) {
	for _, s := range r.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *fakeShiftRepo) List(ctx context.Context, filter shift.ListShiftsFilter) ([]shift.Shift, error) {
	return r.shifts, nil
}

func (r *fakeShiftRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

func (r *fakeShiftRepo) ListScheduledInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && s.Status == shift.StatusScheduled && inRange(s.Date, start, end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) CancelScheduledInRange(ctx context.Context, employeeID int64, start, end time.Time, reason string) (int64, error) {
	var count int64
	for i, s := range r.shifts {
		if s.EmployeeID == employeeID && s.Status == shift.StatusScheduled && inRange(s.Date, start, end) {
			r.shifts[i].Status = shift.StatusCancelled
			r.shifts[i].Notes = &reason
			count++
		}
	}
	return count, nil
}

func (r *fakeShiftRepo) ListBusyEmployeeIDs(ctx context.Context, date time.Time) ([]int64, error) {
	seen := map[int64]bool{}
	var ids []int64
	for _, s := range r.shifts {
		if s.Status != shift.StatusCancelled && s.Date.Equal(date) && !seen[s.EmployeeID] {
			seen[s.EmployeeID] = true
			ids = append(ids, s.EmployeeID)
		}
	}
	return ids, nil
}

func (r *fakeShiftRepo) HoursByEmployee(ctx context.Context, weekStart *time.Time) ([]shift.HoursRow, error) {
	return nil, nil
}

type fakeMailer struct {
	calls []fakeMailCall
}

type fakeMailCall struct {
	employeeName string
	cancelled    int
	proposals    []email.ProposalSummary
}

func (m *fakeMailer) SendReadjustmentReport(employeeName string, cancelled int, proposals []email.ProposalSummary) error {
	m.calls = append(m.calls, fakeMailCall{employeeName, cancelled, proposals})
	return nil
}

// ===== FIXTURES =====

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func fixtureService() (*Service, *fakeShiftRepo, *fakeAbsenceRepo, *fakeMailer) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		// The absent employee.
		{ID: 1, FirstName: "Alice", RestaurantID: ptr(int64(1)), Active: true,
			Seniority: employee.SenioritySenior},
		// Candidates at restaurant 1.
		{ID: 3, FirstName: "Chloe", RestaurantID: ptr(int64(1)), Active: true,
			Seniority: employee.SenioritySenior, IsMobile: false},
		{ID: 4, FirstName: "David", RestaurantID: ptr(int64(1)), Active: true,
			Seniority: employee.SeniorityJunior, IsMobile: true},
		{ID: 5, FirstName: "Emma", RestaurantID: ptr(int64(1)), Active: true,
			Seniority: employee.SenioritySenior, IsMobile: true},
		// Busy on 2025-01-06.
		{ID: 2, FirstName: "Bob", RestaurantID: ptr(int64(1)), Active: true,
			Seniority: employee.SeniorityJunior},
		// Other restaurant, never proposed.
		{ID: 6, FirstName: "Fred", RestaurantID: ptr(int64(2)), Active: true,
			Seniority: employee.SenioritySenior, IsMobile: true},
	}}

	shifts := &fakeShiftRepo{shifts: []shift.Shift{
		{ID: 10, EmployeeID: 1, RestaurantID: 1, Date: date("2025-01-06"),
			StartTime: "10:00", EndTime: "15:00", Status: shift.StatusScheduled,
			EmployeeFirstName: ptr("Alice")},
		{ID: 11, EmployeeID: 1, RestaurantID: 1, Date: date("2025-01-07"),
			StartTime: "17:00", EndTime: "22:00", Status: shift.StatusScheduled,
			EmployeeFirstName: ptr("Alice")},
		// Outside the absence range.
		{ID: 12, EmployeeID: 1, RestaurantID: 1, Date: date("2025-01-09"),
			StartTime: "10:00", EndTime: "15:00", Status: shift.StatusScheduled,
			EmployeeFirstName: ptr("Alice")},
		// Bob works the 6th, so he is not a candidate that day.
		{ID: 13, EmployeeID: 2, RestaurantID: 1, Date: date("2025-01-06"),
			StartTime: "10:00", EndTime: "15:00", Status: shift.StatusScheduled,
			EmployeeFirstName: ptr("Bob")},
	}}

	absences := &fakeAbsenceRepo{absences: map[int64]absence.Absence{
		100: {
			ID: 100, EmployeeID: 1, Type: absence.TypeSickLeave,
			StartDate: date("2025-01-06"), EndDate: date("2025-01-07"),
			Status:            absence.StatusApproved,
			EmployeeFirstName: ptr("Alice"), EmployeeRestaurantID: ptr(int64(1)),
		},
	}}

	restaurants := &fakeRestaurantRepo{restaurants: []restaurant.Restaurant{
		{ID: 1, Name: "Hua Hin"},
		{ID: 2, Name: "Sathorn"},
	}}

	mailer := &fakeMailer{}
	svc := NewService(fakeTxRunner{}, testRules(), mailer, absences, employees, restaurants, shifts)
	return svc, shifts, absences, mailer
}

// ===== READJUSTER TESTS =====

func TestReadjustForAbsence_NotFound(t *testing.T) {
	t.Parallel()
	svc, _, _, mailer := fixtureService()

	_, err := svc.ReadjustForAbsence(context.Background(), 999)

	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
	assert.Empty(t, mailer.calls)
}

func TestReadjustForAbsence_NoOverlappingShifts(t *testing.T) {
	t.Parallel()
	svc, shifts, absences, mailer := fixtureService()

	absences.absences[101] = absence.Absence{
		ID: 101, EmployeeID: 1, Type: absence.TypePaidLeave,
		StartDate: date("2025-02-01"), EndDate: date("2025-02-03"),
		Status:            absence.StatusApproved,
		EmployeeFirstName: ptr("Alice"), EmployeeRestaurantID: ptr(int64(1)),
	}

	result, err := svc.ReadjustForAbsence(context.Background(), 101)

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Cancelled)
	assert.Empty(t, result.AffectedShifts)
	assert.Equal(t, "No shifts affected", result.Message)
	assert.NotEmpty(t, result.ReadjustmentID)
	assert.Empty(t, mailer.calls)

	for _, s := range shifts.shifts {
		assert.Equal(t, shift.StatusScheduled, s.Status)
	}
}

func TestReadjustForAbsence_CancelsOnlyShiftsInRange(t *testing.T) {
	t.Parallel()
	svc, shifts, _, _ := fixtureService()

	result, err := svc.ReadjustForAbsence(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Cancelled)
	assert.Equal(t, "Cancelled 2 shifts. Replacement candidates identified.", result.Message)

	byID := map[int64]shift.Shift{}
	for _, s := range shifts.shifts {
		byID[s.ID] = s
	}
	assert.Equal(t, shift.StatusCancelled, byID[10].Status)
	assert.Equal(t, shift.StatusCancelled, byID[11].Status)
	require.NotNil(t, byID[10].Notes)
	assert.Equal(t, "Cancelled due to approved absence", *byID[10].Notes)

	// Alice's shift outside the range and Bob's shift stay untouched.
	assert.Equal(t, shift.StatusScheduled, byID[12].Status)
	assert.Equal(t, shift.StatusScheduled, byID[13].Status)
}

func TestReadjustForAbsence_ProposesRankedCandidates(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := fixtureService()

	result, err := svc.ReadjustForAbsence(context.Background(), 100)

	require.NoError(t, err)
	require.Len(t, result.AffectedShifts, 2)

	first := result.AffectedShifts[0]
	assert.Equal(t, "2025-01-06", first.Date)
	assert.Equal(t, "10:00-15:00", first.ShiftTime)
	assert.Equal(t, "Alice", first.OriginalEmployee)

	// Senior+mobile before senior before junior+mobile. Alice is excluded by
	// her approved absence, Bob by his shift that day.
	ids := []int64{}
	for _, c := range first.Candidates {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{5, 3, 4}, ids)

	// On the 7th Bob is free again; the cap keeps the list at three.
	second := result.AffectedShifts[1]
	assert.Equal(t, "2025-01-07", second.Date)
	assert.Equal(t, "17:00-22:00", second.ShiftTime)
	require.Len(t, second.Candidates, 3)
	assert.Equal(t, []string{"Emma", "Chloe", "David"}, []string{
		second.Candidates[0].Name, second.Candidates[1].Name, second.Candidates[2].Name,
	})
}

func TestReadjustForAbsence_SendsReport(t *testing.T) {
	t.Parallel()
	svc, _, _, mailer := fixtureService()

	result, err := svc.ReadjustForAbsence(context.Background(), 100)

	require.NoError(t, err)
	require.Len(t, mailer.calls, 1)
	call := mailer.calls[0]
	assert.Equal(t, "Alice", call.employeeName)
	assert.Equal(t, int(result.Cancelled), call.cancelled)
	require.Len(t, call.proposals, 2)
	assert.Equal(t, "2025-01-06", call.proposals[0].Date)
	assert.Equal(t, []string{"Emma", "Chloe", "David"}, call.proposals[0].Candidates)
}

func TestReadjustForAbsence_ShiftWithoutDateGetsNoCandidates(t *testing.T) {
	t.Parallel()
	svc, shifts, absences, _ := fixtureService()

	// A shift row whose date column is null scans to the zero time. It still
	// cancels with the rest, but there is no day to search candidates on.
	shifts.shifts = append(shifts.shifts, shift.Shift{
		ID: 14, EmployeeID: 1, RestaurantID: 1,
		StartTime: "10:00", EndTime: "15:00", Status: shift.StatusScheduled,
		EmployeeFirstName: ptr("Alice"),
	})
	absences.absences[102] = absence.Absence{
		ID: 102, EmployeeID: 1, Type: absence.TypeSickLeave,
		EndDate:           date("2025-01-07"),
		Status:            absence.StatusApproved,
		EmployeeFirstName: ptr("Alice"), EmployeeRestaurantID: ptr(int64(1)),
	}

	result, err := svc.ReadjustForAbsence(context.Background(), 102)

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Cancelled)
	require.Len(t, result.AffectedShifts, 3)

	// The dated shifts still get ranked candidates.
	assert.NotEmpty(t, result.AffectedShifts[0].Candidates)
	assert.NotEmpty(t, result.AffectedShifts[1].Candidates)

	undated := result.AffectedShifts[2]
	assert.Empty(t, undated.Candidates)
	assert.Equal(t, "Alice", undated.OriginalEmployee)
}

func TestReadjustForAbsence_SecondCallIsNoOp(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := fixtureService()
	ctx := context.Background()

	first, err := svc.ReadjustForAbsence(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, int64(2), first.Cancelled)

	second, err := svc.ReadjustForAbsence(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.Cancelled)
	assert.Empty(t, second.AffectedShifts)
}

func TestRankCandidates_FiltersDayOff(t *testing.T) {
	t.Parallel()

	pool := []employee.Employee{
		{ID: 1, FirstName: "Alice", Seniority: employee.SenioritySenior, DaysOff: []int{0}},
		{ID: 2, FirstName: "Bob", Seniority: employee.SeniorityJunior},
	}

	// weekday 0 = Monday, Alice's day off.
	candidates := rankCandidates(pool, nil, nil, 0, 3)

	require.Len(t, candidates, 1)
	assert.Equal(t, int64(2), candidates[0].ID)
}

func TestRankCandidates_AppliesCap(t *testing.T) {
	t.Parallel()

	pool := []employee.Employee{
		{ID: 1, Seniority: employee.SeniorityJunior},
		{ID: 2, Seniority: employee.SeniorityJunior},
		{ID: 3, Seniority: employee.SeniorityJunior},
		{ID: 4, Seniority: employee.SenioritySenior},
	}

	candidates := rankCandidates(pool, nil, nil, 3, 3)

	require.Len(t, candidates, 3)
	// The senior leads even though the cap trims the tail.
	assert.Equal(t, int64(4), candidates[0].ID)
	assert.Equal(t, int64(1), candidates[1].ID)
	assert.Equal(t, int64(2), candidates[2].ID)
}

// ===== VALIDATE SERVICE TESTS =====

func TestValidateSchedule_UsesActiveSnapshot(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := fixtureService()

	result, err := svc.ValidateSchedule(context.Background(), planning.ValidateScheduleRequest{
		Shifts: []shift.Input{
			{EmployeeID: 3, RestaurantID: 1, Date: "2025-01-07", StartTime: "10:00", EndTime: "15:00", Position: "service"},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ReportID)
	assert.Equal(t, 1, result.Stats.TotalShifts)
	// Chloe is senior but covers neither kitchen nor cashier here.
	assert.Contains(t, result.Issues, "2025-01-07 Hua Hin morning: No kitchen staff!")
	assert.Contains(t, result.Issues, "2025-01-07 Hua Hin: No afternoon shift coverage!")
}
