package event

import (
	"time"

	"github.com/google/uuid"
)

type EventDB struct {
	Sequence   int64
	ID         uuid.UUID
	Type       string
	ShipmentID int64
	Actor      string
	Payload    []byte
	RecordedAt time.Time
	PrevHash   []byte
	Hash       []byte
}
