package journal

import (
	"errors"
	"fmt"

	"ledger/internal/entities"
)

var (
	ErrSequenceGap = errors.New("event sequence gap")
	ErrChainBroken = errors.New("event hash chain broken")

	ErrInvalidCursor = fmt.Errorf("invalid event cursor: %w", entities.ErrInvalidInput)
	ErrInvalidLimit  = fmt.Errorf("invalid event page limit: %w", entities.ErrInvalidInput)
)
