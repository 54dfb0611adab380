package response

import (
	"errors"
	"net/http"

	"github.com/krooster/krooster-backend-go/internal/domain/absence"
	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/domain/mission"
	"github.com/krooster/krooster-backend-go/internal/domain/restaurant"
	"github.com/krooster/krooster-backend-go/internal/domain/shift"
	"github.com/krooster/krooster-backend-go/internal/domain/swap"
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
	"github.com/krooster/krooster-backend-go/internal/service/auth"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())

	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, restaurant.ErrRestaurantNotFound):
		NotFound(w, "Restaurant not found")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, mission.ErrMissionNotFound):
		NotFound(w, "Mission not found")
	case errors.Is(err, swap.ErrSwapNotFound):
		NotFound(w, "Swap request not found")

	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")
	case errors.Is(err, absence.ErrAbsenceAlreadyProcessed):
		Conflict(w, "Absence already processed")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
