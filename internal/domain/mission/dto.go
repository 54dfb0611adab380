package mission

import (
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

type CreateMissionRequest struct {
	EmployeeID   int64   `json:"employee_id"`
	RestaurantID int64   `json:"restaurant_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateMissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.RestaurantID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "restaurant_id",
			Message: "restaurant_id is required",
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

type UpdateMissionStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateMissionStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, []string{"proposed", "accepted", "refused", "completed"}) {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be proposed, accepted, refused or completed",
		}}
	}
	return nil
}

type ListMissionsFilter struct {
	EmployeeID   *int64
	RestaurantID *int64
	Status       *string
}
