package absence

import (
	"context"
	"log/slog"

	"github.com/krooster/krooster-backend-go/internal/domain/absence"
	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

type Service struct {
	absences  absence.Repository
	employees employee.Repository
}

func NewService(absences absence.Repository, employees employee.Repository) *Service {
	return &Service{absences: absences, employees: employees}
}

// Create records a new absence request in pending status.
func (s *Service) Create(ctx context.Context, req absence.CreateAbsenceRequest) (absence.Absence, error) {
	if err := req.Validate(); err != nil {
		return absence.Absence{}, err
	}

	// The employee must exist before we accept a request for them.
	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return absence.Absence{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.absences.Create(ctx, absence.Absence{
		EmployeeID: req.EmployeeID,
		Type:       absence.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		Status:     absence.StatusPending,
		Comment:    req.Comment,
	})
	if err != nil {
		return absence.Absence{}, err
	}

	slog.Info("absence requested",
		"absence_id", created.ID,
		"employee_id", created.EmployeeID,
		"type", created.Type,
	)

	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (absence.Absence, error) {
	return s.absences.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter absence.ListAbsencesFilter) ([]absence.Absence, error) {
	return s.absences.List(ctx, filter)
}

// Approve moves a pending absence to approved. Only approved absences
// constrain scheduling; the caller follows up with the readjuster to apply
// the schedule consequences.
func (s *Service) Approve(ctx context.Context, id int64, validatedBy string) (absence.Absence, error) {
	return s.transition(ctx, id, absence.StatusApproved, validatedBy)
}

// Reject moves a pending absence to rejected.
func (s *Service) Reject(ctx context.Context, id int64, validatedBy string) (absence.Absence, error) {
	return s.transition(ctx, id, absence.StatusRejected, validatedBy)
}

func (s *Service) transition(ctx context.Context, id int64, status absence.Status, validatedBy string) (absence.Absence, error) {
	a, err := s.absences.GetByID(ctx, id)
	if err != nil {
		return absence.Absence{}, err
	}
	if a.Status != absence.StatusPending {
		return absence.Absence{}, absence.ErrAbsenceAlreadyProcessed
	}

	if err := s.absences.UpdateStatus(ctx, id, status, &validatedBy); err != nil {
		return absence.Absence{}, err
	}

	slog.Info("absence processed",
		"absence_id", id,
		"status", status,
		"validated_by", validatedBy,
	)

	a.Status = status
	a.ValidatedBy = &validatedBy
	return a, nil
}
