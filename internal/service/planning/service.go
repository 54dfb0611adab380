package planning

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/krooster/krooster-backend-go/internal/config"
	"github.com/krooster/krooster-backend-go/internal/domain/absence"
	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/domain/planning"
	"github.com/krooster/krooster-backend-go/internal/domain/restaurant"
	"github.com/krooster/krooster-backend-go/internal/domain/shift"
	"github.com/krooster/krooster-backend-go/internal/pkg/email"
)

// TxRunner runs a unit of work inside a single database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	db          TxRunner
	rules       config.RulesConfig
	mailer      email.Service
	absences    absence.Repository
	employees   employee.Repository
	restaurants restaurant.Repository
	shifts      shift.Repository
}

func NewService(
	db TxRunner,
	rules config.RulesConfig,
	mailer email.Service,
	absences absence.Repository,
	employees employee.Repository,
	restaurants restaurant.Repository,
	shifts shift.Repository,
) *Service {
	return &Service{
		db:          db,
		rules:       rules,
		mailer:      mailer,
		absences:    absences,
		employees:   employees,
		restaurants: restaurants,
		shifts:      shifts,
	}
}

// ValidateSchedule evaluates a proposed shift list against the staffing rules
// using a fresh snapshot of active employees and restaurants.
func (s *Service) ValidateSchedule(ctx context.Context, req planning.ValidateScheduleRequest) (planning.ValidationResult, error) {
	employees, err := s.employees.List(ctx, true)
	if err != nil {
		return planning.ValidationResult{}, err
	}
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return planning.ValidationResult{}, err
	}

	result := Evaluate(req.Shifts, planning.Context{
		Employees:   employees,
		Restaurants: restaurants,
	}, s.rules)
	result.ReportID = uuid.NewString()

	slog.Info("schedule validated",
		"report_id", result.ReportID,
		"valid", result.Valid,
		"issues", len(result.Issues),
		"warnings", len(result.Warnings),
		"total_shifts", result.Stats.TotalShifts,
	)

	return result, nil
}

const cancelReason = "Cancelled due to approved absence"

// ReadjustForAbsence cancels the absent employee's scheduled shifts in the
// absence's inclusive range and proposes replacement candidates per cancelled
// shift. The cancel and the candidate search run in one transaction so a
// concurrent reader never sees the shifts cancelled without a readjustment
// underway.
func (s *Service) ReadjustForAbsence(ctx context.Context, absenceID int64) (planning.ReadjustResult, error) {
	var result planning.ReadjustResult
	var absentName string

	err := s.db.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.absences.GetByID(ctx, absenceID)
		if err != nil {
			return err
		}
		if a.EmployeeFirstName != nil {
			absentName = *a.EmployeeFirstName
		}

		affected, err := s.shifts.ListScheduledInRange(ctx, a.EmployeeID, a.StartDate, a.EndDate)
		if err != nil {
			return err
		}

		if len(affected) == 0 {
			result = planning.ReadjustResult{
				ReadjustmentID: uuid.NewString(),
				Cancelled:      0,
				AffectedShifts: []planning.ReplacementProposal{},
				Message:        "No shifts affected",
			}
			return nil
		}

		cancelled, err := s.shifts.CancelScheduledInRange(ctx, a.EmployeeID, a.StartDate, a.EndDate, cancelReason)
		if err != nil {
			return err
		}

		lookups := newCandidateLookups(s)
		proposals := make([]planning.ReplacementProposal, 0, len(affected))
		for _, sh := range affected {
			proposal := planning.ReplacementProposal{
				Date:       sh.Date.Format("2006-01-02"),
				ShiftTime:  sh.StartTime + "-" + sh.EndTime,
				Candidates: []planning.Candidate{},
			}
			if sh.EmployeeFirstName != nil {
				proposal.OriginalEmployee = *sh.EmployeeFirstName
			} else {
				proposal.OriginalEmployee = absentName
			}

			// A shift with no usable date cannot be searched; it keeps an
			// empty candidate list instead of failing the whole call.
			if !sh.Date.IsZero() {
				candidates, err := lookups.candidatesFor(ctx, sh, s.rules.CandidateCap)
				if err != nil {
					return err
				}
				proposal.Candidates = candidates
			}

			proposals = append(proposals, proposal)
		}

		result = planning.ReadjustResult{
			ReadjustmentID: uuid.NewString(),
			Cancelled:      cancelled,
			AffectedShifts: proposals,
			Message:        fmt.Sprintf("Cancelled %d shifts. Replacement candidates identified.", cancelled),
		}
		return nil
	})
	if err != nil {
		return planning.ReadjustResult{}, err
	}

	slog.Info("absence readjusted",
		"readjustment_id", result.ReadjustmentID,
		"absence_id", absenceID,
		"cancelled", result.Cancelled,
	)

	if result.Cancelled > 0 {
		s.notifyReadjustment(absentName, result)
	}

	return result, nil
}

// notifyReadjustment mails the readjustment report to the manager. Delivery
// failure is logged, never surfaced: the schedule change is already committed.
func (s *Service) notifyReadjustment(employeeName string, result planning.ReadjustResult) {
	if s.mailer == nil {
		return
	}

	summaries := make([]email.ProposalSummary, 0, len(result.AffectedShifts))
	for _, p := range result.AffectedShifts {
		summary := email.ProposalSummary{
			Date:      p.Date,
			ShiftTime: p.ShiftTime,
		}
		for _, c := range p.Candidates {
			summary.Candidates = append(summary.Candidates, c.Name)
		}
		summaries = append(summaries, summary)
	}

	if err := s.mailer.SendReadjustmentReport(employeeName, int(result.Cancelled), summaries); err != nil {
		slog.Error("failed to send readjustment report",
			"readjustment_id", result.ReadjustmentID,
			"error", err,
		)
	}
}
