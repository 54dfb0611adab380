package planning

import (
	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/domain/restaurant"
)

// Context is the read-only snapshot the evaluator and readjuster work from.
type Context struct {
	Employees   []employee.Employee
	Restaurants []restaurant.Restaurant
}

// Stats summarizes the evaluated schedule.
type Stats struct {
	TotalShifts        int `json:"total_shifts"`
	EmployeesScheduled int `json:"employees_scheduled"`
	DaysCovered        int `json:"days_covered"`
}

// ValidationResult is the evaluator's report. Violations are data, not
// errors: Valid is true exactly when Issues is empty.
type ValidationResult struct {
	ReportID string   `json:"report_id"`
	Valid    bool     `json:"valid"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
	Stats    Stats    `json:"stats"`
}

// Candidate is a replacement suggestion for a cancelled shift.
type Candidate struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Seniority      string   `json:"seniority"`
	IsMobile       bool     `json:"is_mobile"`
	Positions      []string `json:"positions"`
	PreferredShift string   `json:"preferred_shift"`
}

// ReplacementProposal describes one cancelled shift and who could cover it.
type ReplacementProposal struct {
	Date             string      `json:"date"`
	ShiftTime        string      `json:"shift_time"` // "HH:MM-HH:MM"
	OriginalEmployee string      `json:"original_employee"`
	Candidates       []Candidate `json:"candidates"`
}

// ReadjustResult is returned after an approved absence has been applied to
// the persisted schedule.
type ReadjustResult struct {
	ReadjustmentID string                `json:"readjustment_id"`
	Cancelled      int64                 `json:"cancelled"`
	AffectedShifts []ReplacementProposal `json:"affected_shifts"`
	Message        string                `json:"message"`
}
