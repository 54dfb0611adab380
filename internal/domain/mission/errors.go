package mission

import "errors"

var ErrMissionNotFound = errors.New("Mission not found")
