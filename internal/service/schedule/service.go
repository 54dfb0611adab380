package schedule

import (
	"context"
	"log/slog"

	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/domain/mission"
	"github.com/krooster/krooster-backend-go/internal/domain/restaurant"
	"github.com/krooster/krooster-backend-go/internal/domain/shift"
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

// Service manages the persisted schedule objects: shifts and missions.
type Service struct {
	shifts      shift.Repository
	missions    mission.Repository
	employees   employee.Repository
	restaurants restaurant.Repository
}

func NewService(
	shifts shift.Repository,
	missions mission.Repository,
	employees employee.Repository,
	restaurants restaurant.Repository,
) *Service {
	return &Service{
		shifts:      shifts,
		missions:    missions,
		employees:   employees,
		restaurants: restaurants,
	}
}

func (s *Service) GetRestaurant(ctx context.Context, id int64) (restaurant.Restaurant, error) {
	return s.restaurants.GetByID(ctx, id)
}

func (s *Service) ListRestaurants(ctx context.Context) ([]restaurant.Restaurant, error) {
	return s.restaurants.List(ctx)
}

func (s *Service) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.Shift{}, err
	}
	if _, err := s.restaurants.GetByID(ctx, req.RestaurantID); err != nil {
		return shift.Shift{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.shifts.Create(ctx, shift.Shift{
		EmployeeID:   req.EmployeeID,
		RestaurantID: req.RestaurantID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Position:     req.Position,
		IsMission:    req.IsMission,
		Status:       shift.StatusScheduled,
		Notes:        req.Notes,
	})
	if err != nil {
		return shift.Shift{}, err
	}

	slog.Info("shift created",
		"shift_id", created.ID,
		"employee_id", created.EmployeeID,
		"date", req.Date,
	)

	return created, nil
}

func (s *Service) GetShift(ctx context.Context, id int64) (shift.Shift, error) {
	return s.shifts.GetByID(ctx, id)
}

func (s *Service) ListShifts(ctx context.Context, filter shift.ListShiftsFilter) ([]shift.Shift, error) {
	return s.shifts.List(ctx, filter)
}

func (s *Service) DeleteShift(ctx context.Context, id int64) error {
	return s.shifts.Delete(ctx, id)
}

func (s *Service) CreateMission(ctx context.Context, req mission.CreateMissionRequest) (mission.Mission, error) {
	if err := req.Validate(); err != nil {
		return mission.Mission{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return mission.Mission{}, err
	}
	if _, err := s.restaurants.GetByID(ctx, req.RestaurantID); err != nil {
		return mission.Mission{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.missions.Create(ctx, mission.Mission{
		EmployeeID:   req.EmployeeID,
		RestaurantID: req.RestaurantID,
		StartDate:    start,
		EndDate:      end,
		Status:       mission.StatusProposed,
		Notes:        req.Notes,
	})
	if err != nil {
		return mission.Mission{}, err
	}

	slog.Info("mission proposed",
		"mission_id", created.ID,
		"employee_id", created.EmployeeID,
		"employee_mobile", emp.IsMobile,
		"restaurant_id", created.RestaurantID,
	)

	return created, nil
}

func (s *Service) ListMissions(ctx context.Context, filter mission.ListMissionsFilter) ([]mission.Mission, error) {
	return s.missions.List(ctx, filter)
}

func (s *Service) UpdateMissionStatus(ctx context.Context, id int64, req mission.UpdateMissionStatusRequest) (mission.Mission, error) {
	if err := req.Validate(); err != nil {
		return mission.Mission{}, err
	}

	if err := s.missions.UpdateStatus(ctx, id, mission.Status(req.Status)); err != nil {
		return mission.Mission{}, err
	}

	return s.missions.GetByID(ctx, id)
}
