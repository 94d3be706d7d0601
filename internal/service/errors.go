package service

import "errors"

// ErrValidation marks a request rejected for a missing or malformed field; the
// HTTP layer maps it to 400 and passes the message through.
var ErrValidation = errors.New("validation failed")
