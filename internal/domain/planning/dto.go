package planning

import (
	"github.com/krooster/krooster-backend-go/internal/domain/shift"
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

// ValidateScheduleRequest carries a proposed schedule to evaluate. Individual
// shifts stay untrusted; only the envelope is validated here.
type ValidateScheduleRequest struct {
	Shifts []shift.Input `json:"shifts"`
}

func (r *ValidateScheduleRequest) Validate() error {
	if len(r.Shifts) == 0 {
		return validator.ValidationErrors{{
			Field:   "shifts",
			Message: "shifts must not be empty",
		}}
	}
	return nil
}
