package mission

import "time"

type Status string

const (
	StatusProposed  Status = "proposed"
	StatusAccepted  Status = "accepted"
	StatusRefused   Status = "refused"
	StatusCompleted Status = "completed"
)

// Mission is a temporary posting of a mobile employee to another restaurant.
type Mission struct {
	ID           int64
	EmployeeID   int64
	RestaurantID int64
	StartDate    time.Time
	EndDate      time.Time // inclusive
	Status       Status
	Notes        *string
	CreatedAt    time.Time

	// Relationships (for responses)
	EmployeeFirstName *string
	EmployeeLastName  *string
	RestaurantName    *string
}

// ActiveOn reports whether the mission is accepted and covers the given date.
func (m Mission) ActiveOn(date time.Time) bool {
	return m.Status == StatusAccepted &&
		!date.Before(m.StartDate) && !date.After(m.EndDate)
}
