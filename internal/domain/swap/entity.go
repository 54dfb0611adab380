package swap

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// SwapRequest records a shift exchange between two employees. The shifts
// themselves are exchanged when the request is approved.
type SwapRequest struct {
	ID               int64
	RequesterShiftID int64
	TargetShiftID    int64
	Status           Status
	Reason           *string
	CreatedAt        time.Time

	// Relationships (for responses)
	RequesterName  *string
	TargetName     *string
	RequesterDate  *time.Time
	TargetDate     *time.Time
	RequesterTimes *string // "HH:MM-HH:MM"
	TargetTimes    *string
}
