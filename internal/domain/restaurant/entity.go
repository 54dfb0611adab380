package restaurant

import "time"

type Restaurant struct {
	ID           int64
	Name         string
	Location     string
	Address      *string
	OpeningHours string // "HH:MM"
	ClosingHours string // "HH:MM"
	ClosedDates  []time.Time
	CreatedAt    time.Time
}
