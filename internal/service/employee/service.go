package employee

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/krooster/krooster-backend-go/internal/config"
	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/domain/shift"
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

const fallbackTargetHours = 20

type Service struct {
	employees employee.Repository
	shifts    shift.Repository
	rules     config.RulesConfig
}

func NewService(employees employee.Repository, shifts shift.Repository, rules config.RulesConfig) *Service {
	return &Service{employees: employees, shifts: shifts, rules: rules}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Email:           req.Email,
		RestaurantID:    req.RestaurantID,
		IsMobile:        req.IsMobile,
		Positions:       req.Positions,
		Active:          true,
		DaysOff:         req.DaysOff,
		PreferredShift:  employee.ShiftPreferenceFlexible,
		EmploymentType:  employee.EmploymentTypeFullTime,
		MaxHoursPerWeek: req.MaxHoursPerWeek,
		Seniority:       employee.SeniorityJunior,
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}
	if req.HireDate != nil {
		d, _ := validator.IsValidDate(*req.HireDate)
		emp.HireDate = &d
	}
	if req.PreferredShift != "" {
		emp.PreferredShift = employee.ShiftPreference(req.PreferredShift)
	}
	if req.EmploymentType != "" {
		emp.EmploymentType = employee.EmploymentType(req.EmploymentType)
	}
	if req.Seniority != "" {
		emp.Seniority = employee.Seniority(req.Seniority)
	}

	created, err := s.employees.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "name", created.FullName())

	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return s.employees.List(ctx, activeOnly)
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	if err := s.employees.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}
	return s.employees.GetByID(ctx, req.ID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("employee deactivated", "employee_id", id)
	return nil
}

// WeeklyHours reports each active employee's scheduled hours against their
// personal target: the weekly target for full-timers, max_hours_per_week (or
// 20) for everyone else. A small tolerance band around the target reads as ok.
func (s *Service) WeeklyHours(ctx context.Context, weekStart *time.Time) ([]employee.WeeklyHours, error) {
	rows, err := s.shifts.HoursByEmployee(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	report := make([]employee.WeeklyHours, 0, len(rows))
	for _, row := range rows {
		hours := math.Round(row.TotalHours*10) / 10

		target := float64(s.rules.WeeklyHoursTarget)
		if row.EmploymentType != string(employee.EmploymentTypeFullTime) {
			target = fallbackTargetHours
			if row.MaxHoursPerWeek != nil {
				target = *row.MaxHoursPerWeek
			}
		}

		status := "ok"
		if math.Abs(hours-target) > 4 {
			if hours < target {
				status = "under"
			} else {
				status = "over"
			}
		}

		report = append(report, employee.WeeklyHours{
			ID:             row.EmployeeID,
			Name:           row.FirstName,
			Seniority:      employee.Seniority(row.Seniority),
			EmploymentType: employee.EmploymentType(row.EmploymentType),
			ShiftCount:     row.ShiftCount,
			HoursScheduled: hours,
			TargetHours:    target,
			Status:         status,
		})
	}

	return report, nil
}
