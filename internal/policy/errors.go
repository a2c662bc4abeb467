package policy

import "errors"

var ErrUnknownOperation = errors.New("unknown operation")
