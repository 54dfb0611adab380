package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/krooster/krooster-backend-go/internal/domain/mission"
	"github.com/krooster/krooster-backend-go/internal/domain/shift"
	"github.com/krooster/krooster-backend-go/internal/handler/http/response"
	scheduleService "github.com/krooster/krooster-backend-go/internal/service/schedule"
)

type ScheduleHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	CreateMission(w http.ResponseWriter, r *http.Request)
	ListMissions(w http.ResponseWriter, r *http.Request)
	UpdateMissionStatus(w http.ResponseWriter, r *http.Request)

	GetRestaurant(w http.ResponseWriter, r *http.Request)
	ListRestaurants(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService *scheduleService.Service
}

func NewScheduleHandler(svc *scheduleService.Service) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: svc}
}

// GetRestaurant implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		response.BadRequest(w, "Restaurant ID is required", nil)
		return
	}

	rest, err := h.scheduleService.GetRestaurant(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rest)
}

// ListRestaurants implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.scheduleService.ListRestaurants(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, restaurants)
}

// CreateShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.scheduleService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", created)
}

// GetShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	s, err := h.scheduleService.GetShift(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, s)
}

func queryInt64(r *http.Request, key string) *int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryString(r *http.Request, key string) *string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	return &raw
}

// ListShifts implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	filter := shift.ListShiftsFilter{
		EmployeeID:   queryInt64(r, "employee_id"),
		RestaurantID: queryInt64(r, "restaurant_id"),
		StartDate:    queryString(r, "start_date"),
		EndDate:      queryString(r, "end_date"),
		Status:       queryString(r, "status"),
	}

	shifts, err := h.scheduleService.ListShifts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// DeleteShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.scheduleService.DeleteShift(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// CreateMission implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateMission(w http.ResponseWriter, r *http.Request) {
	var req mission.CreateMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateMission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.scheduleService.CreateMission(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Mission proposed successfully", created)
}

// ListMissions implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListMissions(w http.ResponseWriter, r *http.Request) {
	filter := mission.ListMissionsFilter{
		EmployeeID:   queryInt64(r, "employee_id"),
		RestaurantID: queryInt64(r, "restaurant_id"),
		Status:       queryString(r, "status"),
	}

	missions, err := h.scheduleService.ListMissions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, missions)
}

// UpdateMissionStatus implements ScheduleHandler.
func (h *ScheduleHandlerImpl) UpdateMissionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		response.BadRequest(w, "Mission ID is required", nil)
		return
	}

	var req mission.UpdateMissionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMissionStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.scheduleService.UpdateMissionStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Mission status updated", updated)
}
