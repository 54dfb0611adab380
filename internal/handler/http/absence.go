package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/krooster/krooster-backend-go/internal/domain/absence"
	"github.com/krooster/krooster-backend-go/internal/handler/http/response"
	absenceService "github.com/krooster/krooster-backend-go/internal/service/absence"
)

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService *absenceService.Service
}

func NewAbsenceHandler(svc *absenceService.Service) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: svc}
}

// Create implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.absenceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence requested successfully", created)
}

// Get implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		response.BadRequest(w, "Absence ID is required", nil)
		return
	}

	a, err := h.absenceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, a)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := absence.ListAbsencesFilter{
		EmployeeID: queryInt64(r, "employee_id"),
		Status:     queryString(r, "status"),
	}

	absences, err := h.absenceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absences)
}

// Approve implements AbsenceHandler. Approval only flips the status; the
// schedule consequences are applied by the readjust endpoint.
func (h *AbsenceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		response.BadRequest(w, "Absence ID is required", nil)
		return
	}

	approved, err := h.absenceService.Approve(r.Context(), id, usernameFromToken(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence approved", approved)
}

// Reject implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		response.BadRequest(w, "Absence ID is required", nil)
		return
	}

	rejected, err := h.absenceService.Reject(r.Context(), id, usernameFromToken(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence rejected", rejected)
}
