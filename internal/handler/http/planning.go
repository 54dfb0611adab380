package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/krooster/krooster-backend-go/internal/domain/planning"
	"github.com/krooster/krooster-backend-go/internal/handler/http/response"
	planningService "github.com/krooster/krooster-backend-go/internal/service/planning"
)

type PlanningHandler interface {
	ValidateSchedule(w http.ResponseWriter, r *http.Request)
	ReadjustAbsence(w http.ResponseWriter, r *http.Request)
}

type PlanningHandlerImpl struct {
	planningService *planningService.Service
}

func NewPlanningHandler(svc *planningService.Service) PlanningHandler {
	return &PlanningHandlerImpl{planningService: svc}
}

// ValidateSchedule implements PlanningHandler. The body is a proposed shift
// list from an external schedule author; individual shifts are untrusted and
// checked softly by the evaluator itself.
func (h *PlanningHandlerImpl) ValidateSchedule(w http.ResponseWriter, r *http.Request) {
	var req planning.ValidateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ValidateSchedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.planningService.ValidateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ReadjustAbsence implements PlanningHandler.
func (h *PlanningHandlerImpl) ReadjustAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		response.BadRequest(w, "Absence ID is required", nil)
		return
	}

	result, err := h.planningService.ReadjustForAbsence(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
