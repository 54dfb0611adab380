package employee

import (
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Phone           *string  `json:"phone,omitempty"`
	Email           *string  `json:"email,omitempty"`
	RestaurantID    *int64   `json:"restaurant_id,omitempty"`
	IsMobile        bool     `json:"is_mobile"`
	Positions       []string `json:"positions"`
	Active          *bool    `json:"active,omitempty"`
	HireDate        *string  `json:"hire_date,omitempty"`
	DaysOff         []int    `json:"days_off,omitempty"`
	PreferredShift  string   `json:"preferred_shift,omitempty"`
	EmploymentType  string   `json:"employment_type,omitempty"`
	MaxHoursPerWeek *float64 `json:"max_hours_per_week,omitempty"`
	Seniority       string   `json:"seniority,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}
	for _, d := range r.DaysOff {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "days_off",
				Message: "days_off entries must be between 0 (Monday) and 6 (Sunday)",
			})
			break
		}
	}
	if r.PreferredShift != "" && !validator.IsInSlice(r.PreferredShift, []string{"morning", "afternoon", "flexible"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "preferred_shift",
			Message: "preferred_shift must be morning, afternoon or flexible",
		})
	}
	if r.EmploymentType != "" && !validator.IsInSlice(r.EmploymentType, []string{"full_time", "part_time", "extra"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be full_time, part_time or extra",
		})
	}
	if r.Seniority != "" && !validator.IsInSlice(r.Seniority, []string{"senior", "junior"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "seniority",
			Message: "seniority must be senior or junior",
		})
	}
	if r.MaxHoursPerWeek != nil && *r.MaxHoursPerWeek <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_hours_per_week",
			Message: "max_hours_per_week must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID              int64    `json:"-"`
	FirstName       *string  `json:"first_name,omitempty"`
	LastName        *string  `json:"last_name,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	Email           *string  `json:"email,omitempty"`
	RestaurantID    *int64   `json:"restaurant_id,omitempty"`
	IsMobile        *bool    `json:"is_mobile,omitempty"`
	Positions       []string `json:"positions,omitempty"`
	Active          *bool    `json:"active,omitempty"`
	DaysOff         []int    `json:"days_off,omitempty"`
	PreferredShift  *string  `json:"preferred_shift,omitempty"`
	EmploymentType  *string  `json:"employment_type,omitempty"`
	MaxHoursPerWeek *float64 `json:"max_hours_per_week,omitempty"`
	Seniority       *string  `json:"seniority,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}
	for _, d := range r.DaysOff {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "days_off",
				Message: "days_off entries must be between 0 (Monday) and 6 (Sunday)",
			})
			break
		}
	}
	if r.PreferredShift != nil && !validator.IsInSlice(*r.PreferredShift, []string{"morning", "afternoon", "flexible"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "preferred_shift",
			Message: "preferred_shift must be morning, afternoon or flexible",
		})
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, []string{"full_time", "part_time", "extra"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be full_time, part_time or extra",
		})
	}
	if r.Seniority != nil && !validator.IsInSlice(*r.Seniority, []string{"senior", "junior"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "seniority",
			Message: "seniority must be senior or junior",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeeklyHours is one row of the weekly hours report.
type WeeklyHours struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Seniority      Seniority      `json:"seniority"`
	EmploymentType EmploymentType `json:"employment_type"`
	ShiftCount     int            `json:"shift_count"`
	HoursScheduled float64        `json:"hours_scheduled"`
	TargetHours    float64        `json:"target_hours"`
	Status         string         `json:"status"` // ok, under, over
}
