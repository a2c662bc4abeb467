package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventActorRegistered       EventType = "ActorRegistered"
	EventShipmentCreated       EventType = "ShipmentCreated"
	EventShipmentDetailsAdded  EventType = "ShipmentDetailsAdded"
	EventShipmentStatusUpdated EventType = "ShipmentStatusUpdated"
	EventDocumentAdded         EventType = "DocumentAdded"
	EventDocumentAccessGranted EventType = "DocumentAccessGranted"
	EventDemurrageRecorded     EventType = "DemurrageRecorded"
	EventDemurragePaid         EventType = "DemurragePaid"
)

func (t EventType) String() string {
	return string(t)
}

// Event запись журнала. Sequence плотный с 1, Hash покрывает все поля и PrevHash.
type Event struct {
	Sequence   int64
	ID         uuid.UUID
	Type       EventType
	ShipmentID int64
	Actor      Address
	Payload    json.RawMessage
	RecordedAt time.Time
	PrevHash   []byte
	Hash       []byte
}

// EventDraft то, что сервис передает в журнал. Payload сериализуется в JSON.
type EventDraft struct {
	Type       EventType
	ShipmentID int64
	Actor      Address
	Payload    any
}

type ActorRegisteredPayload struct {
	Identity Address `json:"identity"`
	Role     Role    `json:"role"`
}

type ShipmentCreatedPayload struct {
	ID            int64         `json:"id"`
	Shipper       Address       `json:"shipper"`
	Carrier       Address       `json:"carrier"`
	Consignee     Address       `json:"consignee"`
	ContainerType ContainerType `json:"containerType"`
	WeightKg      int64         `json:"weightKg"`
}

type ShipmentDetailsAddedPayload struct {
	ID            int64         `json:"id"`
	ContainerType ContainerType `json:"containerType"`
	WeightKg      int64         `json:"weightKg"`
}

type ShipmentStatusUpdatedPayload struct {
	ID        int64          `json:"id"`
	Status    ShipmentStatus `json:"status"`
	UpdatedBy Address        `json:"updatedBy"`
}

type DocumentAddedPayload struct {
	ID       int64   `json:"id"`
	Hash     string  `json:"hash"`
	Location string  `json:"location"`
	AddedBy  Address `json:"addedBy"`
}

type DocumentAccessGrantedPayload struct {
	ID      int64   `json:"id"`
	Hash    string  `json:"hash"`
	Grantee Address `json:"grantee"`
	Grantor Address `json:"grantor"`
}

type DemurrageRecordedPayload struct {
	ID         int64   `json:"id"`
	Amount     int64   `json:"amount"`
	Payee      Address `json:"payee"`
	RecordedBy Address `json:"recordedBy"`
}

type DemurragePaidPayload struct {
	ID     int64   `json:"id"`
	Amount int64   `json:"amount"`
	Payee  Address `json:"payee"`
}

// AuditCheckpoint последнее событие, проверенное независимым аудитом.
type AuditCheckpoint struct {
	LastSequence int64
	LastHash     []byte
	UpdatedAt    time.Time
}
