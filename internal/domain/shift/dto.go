package shift

import (
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

// Input is a proposed shift as received from an external schedule author. It
// is untrusted: any field may be missing or malformed, and the evaluator has
// to cope without failing the whole run.
type Input struct {
	EmployeeID   int64  `json:"employee_id"`
	RestaurantID int64  `json:"restaurant_id"`
	Date         string `json:"date"`       // "YYYY-MM-DD"
	StartTime    string `json:"start_time"` // "HH:MM"
	EndTime      string `json:"end_time"`   // "HH:MM"
	Position     string `json:"position"`
	IsMission    bool   `json:"is_mission"`
}

type CreateShiftRequest struct {
	EmployeeID   int64   `json:"employee_id"`
	RestaurantID int64   `json:"restaurant_id"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Position     string  `json:"position"`
	IsMission    bool    `json:"is_mission"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
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
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if _, _, ok := validator.ParseClock(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if _, _, ok := validator.ParseClock(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListShiftsFilter struct {
	EmployeeID   *int64
	RestaurantID *int64
	StartDate    *string
	EndDate      *string
	Status       *string
}
