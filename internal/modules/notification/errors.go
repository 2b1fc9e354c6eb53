package notification

import "errors"

var ErrValidation = errors.New("validation error")
