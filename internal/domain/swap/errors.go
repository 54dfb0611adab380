package swap

import "errors"

var ErrSwapNotFound = errors.New("Swap request not found")
