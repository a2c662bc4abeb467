package event

import (
	"encoding/json"

	"ledger/internal/entities"
)

func ToDomain(e *EventDB) *entities.Event {
	if e == nil {
		return nil
	}

	return &entities.Event{
		Sequence:   e.Sequence,
		ID:         e.ID,
		Type:       entities.EventType(e.Type),
		ShipmentID: e.ShipmentID,
		Actor:      entities.Address(e.Actor),
		Payload:    json.RawMessage(e.Payload),
		RecordedAt: e.RecordedAt.UTC(),
		PrevHash:   e.PrevHash,
		Hash:       e.Hash,
	}
}

func ToDomainList(eventsDB []EventDB) []entities.Event {
	if len(eventsDB) == 0 {
		return []entities.Event{}
	}

	result := make([]entities.Event, len(eventsDB))
	for i := range eventsDB {
		result[i] = *ToDomain(&eventsDB[i])
	}
	return result
}
