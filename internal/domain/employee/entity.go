package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID              int64
	FirstName       string
	LastName        string
	Phone           *string
	Email           *string
	RestaurantID    *int64 // nil means unassigned
	RestaurantName  *string
	IsMobile        bool
	Positions       []string
	Active          bool
	HireDate        *time.Time
	DaysOff         []int // weekday indices, 0=Monday..6=Sunday
	PreferredShift  ShiftPreference
	EmploymentType  EmploymentType
	MaxHoursPerWeek *float64
	Seniority       Seniority
	CreatedAt       time.Time
}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full_time"
	EmploymentTypePartTime EmploymentType = "part_time"
	EmploymentTypeExtra    EmploymentType = "extra"
)

type ShiftPreference string

const (
	ShiftPreferenceMorning   ShiftPreference = "morning"
	ShiftPreferenceAfternoon ShiftPreference = "afternoon"
	ShiftPreferenceFlexible  ShiftPreference = "flexible"
)

type Seniority string

const (
	SenioritySenior Seniority = "senior"
	SeniorityJunior Seniority = "junior"
)

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// HasPosition reports whether the employee is capable of working the given
// position tag, regardless of the position recorded on any particular shift.
func (e Employee) HasPosition(tag string) bool {
	for _, p := range e.Positions {
		if p == tag {
			return true
		}
	}
	return false
}

// HasDayOff reports whether the given weekday index (0=Monday) is one of the
// employee's fixed days off.
func (e Employee) HasDayOff(weekday int) bool {
	for _, d := range e.DaysOff {
		if d == weekday {
			return true
		}
	}
	return false
}
