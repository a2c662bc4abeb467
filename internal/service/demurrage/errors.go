package demurrage

import (
	"fmt"

	"ledger/internal/entities"
)

var (
	ErrNullPayee              = fmt.Errorf("payee is the null identity: %w", entities.ErrInvalidInput)
	ErrNegativeAmount         = fmt.Errorf("demurrage amount must not be negative: %w", entities.ErrInvalidInput)
	ErrDemurrageAlreadyExists = fmt.Errorf("demurrage record: %w", entities.ErrAlreadyExists)
	ErrDemurrageNotRecorded   = fmt.Errorf("demurrage not recorded: %w", entities.ErrInvalidStatus)
	ErrNotPayee               = fmt.Errorf("caller is not the demurrage payee: %w", entities.ErrUnauthorized)
	ErrAlreadyPaid            = fmt.Errorf("demurrage already paid: %w", entities.ErrAlreadyExists)
)
