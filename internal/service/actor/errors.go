package actor

import (
	"fmt"

	"ledger/internal/entities"
)

var (
	ErrNotRegistrar       = fmt.Errorf("caller is not the registrar: %w", entities.ErrUnauthorized)
	ErrNullIdentity       = fmt.Errorf("null identity: %w", entities.ErrInvalidInput)
	ErrRoleNotAssignable  = fmt.Errorf("role is not assignable: %w", entities.ErrInvalidInput)
	ErrActorAlreadyExists = fmt.Errorf("actor already registered: %w", entities.ErrAlreadyExists)
)
