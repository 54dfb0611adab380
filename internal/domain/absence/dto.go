package absence

import (
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

type CreateAbsenceRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Comment    *string `json:"comment,omitempty"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsInSlice(r.Type, []string{"paid_leave", "unpaid_leave", "sick_leave", "training"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be paid_leave, unpaid_leave, sick_leave or training",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectAbsenceRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type ListAbsencesFilter struct {
	EmployeeID *int64
	Status     *string
}
