package entities

import "time"

type ShipmentStatus string

const (
	StatusCreated   ShipmentStatus = "created"
	StatusPickedUp  ShipmentStatus = "picked_up"
	StatusInTransit ShipmentStatus = "in_transit"
	StatusDelivered ShipmentStatus = "delivered"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

// Known сообщает, входит ли статус в фиксированную последовательность.
func (s ShipmentStatus) Known() bool {
	return s.rank() > 0
}

// AtLeast true, если s не раньше other в последовательности
// created -> picked_up -> in_transit -> delivered.
func (s ShipmentStatus) AtLeast(other ShipmentStatus) bool {
	return s.Known() && s.rank() >= other.rank()
}

func (s ShipmentStatus) rank() int {
	switch s {
	case StatusCreated:
		return 1
	case StatusPickedUp:
		return 2
	case StatusInTransit:
		return 3
	case StatusDelivered:
		return 4
	default:
		return 0
	}
}

type ContainerType string

const (
	ContainerDry    ContainerType = "dry"
	ContainerReefer ContainerType = "reefer"
)

const DefaultContainerType = ContainerDry

func (t ContainerType) String() string {
	return string(t)
}

func (t ContainerType) Known() bool {
	return t == ContainerDry || t == ContainerReefer
}

// CargoDetails добавляются один раз. nil в Shipment.Details означает
// что детали еще не добавлены.
type CargoDetails struct {
	ContainerType ContainerType
	WeightKg      int64
}

type Shipment struct {
	ID        int64
	Shipper   Address
	Carrier   Address
	Consignee Address
	Status    ShipmentStatus
	Details   *CargoDetails
	// BoLAdded выставляет хранилище по наличию документа.
	BoLAdded    bool
	CreatedAt   time.Time
	PickedUpAt  time.Time
	DeliveredAt time.Time
}

func (s *Shipment) DetailsAdded() bool {
	return s.Details != nil
}

// Cargo возвращает детали груза, для не детализированной отправки dry/0.
func (s *Shipment) Cargo() CargoDetails {
	if s.Details == nil {
		return CargoDetails{ContainerType: DefaultContainerType}
	}
	return *s.Details
}

// IsParty true, если addr один из трех участников отправки.
func (s *Shipment) IsParty(addr Address) bool {
	return !addr.IsNull() && (addr == s.Shipper || addr == s.Carrier || addr == s.Consignee)
}
