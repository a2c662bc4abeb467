package document

import (
	"fmt"

	"ledger/internal/entities"
)

var (
	ErrBoLNotAdded      = fmt.Errorf("shipment document: %w", entities.ErrBoLNotAdded)
	ErrBoLAlreadyAdded  = fmt.Errorf("shipment document: %w", entities.ErrAlreadyExists)
	ErrEmptyHash        = fmt.Errorf("document hash is empty: %w", entities.ErrInvalidInput)
	ErrEmptyLocation    = fmt.Errorf("document location is empty: %w", entities.ErrInvalidInput)
	ErrNullGrantee      = fmt.Errorf("grantee is the null identity: %w", entities.ErrInvalidInput)
	ErrNoDocumentAccess = fmt.Errorf("caller is not in the document access list: %w", entities.ErrUnauthorized)
)
