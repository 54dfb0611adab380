package restaurant

import "errors"

var ErrRestaurantNotFound = errors.New("Restaurant not found")
