package absence

import "time"

type Type string

const (
	TypePaidLeave   Type = "paid_leave"
	TypeUnpaidLeave Type = "unpaid_leave"
	TypeSickLeave   Type = "sick_leave"
	TypeTraining    Type = "training"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Absence struct {
	ID             int64
	EmployeeID     int64
	Type           Type
	StartDate      time.Time
	EndDate        time.Time // inclusive
	Status         Status
	Comment        *string
	ValidatedBy    *string
	ValidationDate *time.Time
	CreatedAt      time.Time

	// Relationships (for responses)
	EmployeeFirstName    *string
	EmployeeLastName     *string
	EmployeeRestaurantID *int64
}

// Covers reports whether the given date falls in the absence's inclusive
// range.
func (a Absence) Covers(date time.Time) bool {
	return !date.Before(a.StartDate) && !date.After(a.EndDate)
}
