package absence

import "errors"

var (
	ErrAbsenceNotFound         = errors.New("Absence not found")
	ErrAbsenceAlreadyProcessed = errors.New("Absence already processed")
)
