package models

import "errors"

// ErrInvalidRequest wraps input validation failures from the app layers.
var ErrInvalidRequest = errors.New("validation failed")
