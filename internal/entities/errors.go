package entities

import "errors"

// Базовая таксономия ошибок леджера. Ошибки сервисов оборачивают одну из них,
// REST слой маппит статус по errors.Is.
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid status")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrBoLNotAdded   = errors.New("bill of lading not added")
)
