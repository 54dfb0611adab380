package shift

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Shift struct {
	ID           int64
	EmployeeID   int64
	RestaurantID int64
	Date         time.Time
	StartTime    string // "HH:MM"
	EndTime      string // "HH:MM"
	Position     string
	IsMission    bool
	Status       Status
	Notes        *string
	CreatedAt    time.Time

	// Relationships (for responses)
	EmployeeFirstName *string
	EmployeeLastName  *string
	RestaurantName    *string
}
