package shipment

import (
	"fmt"

	"ledger/internal/entities"
)

var (
	ErrShipmentNotFound     = fmt.Errorf("shipment: %w", entities.ErrNotFound)
	ErrNullParty            = fmt.Errorf("carrier and consignee must be set: %w", entities.ErrInvalidInput)
	ErrUnknownContainerType = fmt.Errorf("unknown container type: %w", entities.ErrInvalidInput)
	ErrNegativeWeight       = fmt.Errorf("weight must not be negative: %w", entities.ErrInvalidInput)
	ErrDetailsAlreadyAdded  = fmt.Errorf("shipment details: %w", entities.ErrAlreadyExists)
)
