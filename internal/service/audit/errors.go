package audit

import "errors"

var (
	ErrUndefinedEventType = errors.New("undefined ledger event type")
	ErrMalformedPayload   = errors.New("malformed ledger event payload")
	ErrDuplicateEvent     = errors.New("ledger event already audited")
)
