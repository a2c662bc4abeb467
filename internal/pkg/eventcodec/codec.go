package eventcodec

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"ledger/internal/entities"
	"ledger/internal/generated/dto"
	"ledger/internal/service/journal"
)

var ErrMalformedEvent = errors.New("malformed ledger event")

// ToDTO внешнее представление события: хеши в hex, payload без изменений.
func ToDTO(e *entities.Event) dto.LedgerEvent {
	return dto.LedgerEvent{
		Sequence:   e.Sequence,
		Id:         e.ID,
		Type:       e.Type.String(),
		ShipmentId: e.ShipmentID,
		Actor:      e.Actor.String(),
		Payload:    e.Payload,
		RecordedAt: e.RecordedAt.UTC(),
		PrevHash:   hex.EncodeToString(e.PrevHash),
		Hash:       hex.EncodeToString(e.Hash),
	}
}

func ToDTOs(events []entities.Event) []dto.LedgerEvent {
	res := make([]dto.LedgerEvent, 0, len(events))
	for i := range events {
		res = append(res, ToDTO(&events[i]))
	}
	return res
}

func FromDTO(d *dto.LedgerEvent) (entities.Event, error) {
	actor, err := entities.ParseAddress(d.Actor)
	if err != nil {
		return entities.Event{}, fmt.Errorf("%w: actor: %v", ErrMalformedEvent, err)
	}
	prevHash, err := decodeHash(d.PrevHash)
	if err != nil {
		return entities.Event{}, fmt.Errorf("%w: prevHash: %v", ErrMalformedEvent, err)
	}
	hash, err := decodeHash(d.Hash)
	if err != nil {
		return entities.Event{}, fmt.Errorf("%w: hash: %v", ErrMalformedEvent, err)
	}
	if d.Sequence <= 0 {
		return entities.Event{}, fmt.Errorf("%w: sequence %d", ErrMalformedEvent, d.Sequence)
	}

	return entities.Event{
		Sequence:   d.Sequence,
		ID:         d.Id,
		Type:       entities.EventType(d.Type),
		ShipmentID: d.ShipmentId,
		Actor:      actor,
		Payload:    d.Payload,
		RecordedAt: d.RecordedAt.UTC(),
		PrevHash:   prevHash,
		Hash:       hash,
	}, nil
}

// Marshal формат сообщения в Kafka.
func Marshal(e *entities.Event) ([]byte, error) {
	data, err := json.Marshal(ToDTO(e))
	if err != nil {
		return nil, fmt.Errorf("marshal event %d: %w", e.Sequence, err)
	}
	return data, nil
}

func Unmarshal(data []byte) (entities.Event, error) {
	var d dto.LedgerEvent
	if err := json.Unmarshal(data, &d); err != nil {
		return entities.Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return FromDTO(&d)
}

func decodeHash(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != journal.HashSize {
		return nil, fmt.Errorf("expected %d bytes, got %d", journal.HashSize, len(b))
	}
	return b, nil
}
