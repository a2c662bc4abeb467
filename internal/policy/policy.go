// Package policy таблица прав: операция x роль x сторона отправки x статус.
// Все проверки прав в сервисах идут только через нее.
package policy

import (
	"fmt"
	"slices"

	"ledger/internal/entities"
)

type Operation string

const (
	CreateShipment      Operation = "create_shipment"
	AddShipmentDetails  Operation = "add_shipment_details"
	PickUp              Operation = "pick_up"
	StartTransit        Operation = "start_transit"
	Deliver             Operation = "deliver"
	AddBillOfLading     Operation = "add_bill_of_lading"
	GrantDocumentAccess Operation = "grant_document_access"
	RecordDemurrage     Operation = "record_demurrage"
)

// Party с какой стороной отправки должен совпасть вызывающий.
type Party int

const (
	AnyParty Party = iota
	ShipperParty
	CarrierParty
	ConsigneeParty
)

type Rule struct {
	Operation Operation
	Role      entities.Role
	Party     Party
	// From допустимые исходные статусы, nil если операция не зависит от статуса.
	From []entities.ShipmentStatus
	// To целевой статус, пусто если статус не меняется.
	To entities.ShipmentStatus
}

var rules = []Rule{
	{
		Operation: CreateShipment,
		Role:      entities.RoleShipper,
		Party:     AnyParty,
		To:        entities.StatusCreated,
	},
	{
		Operation: AddShipmentDetails,
		Role:      entities.RoleShipper,
		Party:     ShipperParty,
		From:      []entities.ShipmentStatus{entities.StatusCreated},
	},
	{
		Operation: PickUp,
		Role:      entities.RoleCarrier,
		Party:     CarrierParty,
		From:      []entities.ShipmentStatus{entities.StatusCreated},
		To:        entities.StatusPickedUp,
	},
	{
		Operation: StartTransit,
		Role:      entities.RoleCarrier,
		Party:     CarrierParty,
		From:      []entities.ShipmentStatus{entities.StatusPickedUp},
		To:        entities.StatusInTransit,
	},
	{
		Operation: Deliver,
		Role:      entities.RoleConsignee,
		Party:     ConsigneeParty,
		From:      []entities.ShipmentStatus{entities.StatusInTransit},
		To:        entities.StatusDelivered,
	},
	{
		Operation: AddBillOfLading,
		Role:      entities.RoleCarrier,
		Party:     CarrierParty,
		From:      []entities.ShipmentStatus{entities.StatusCreated},
	},
	{
		Operation: GrantDocumentAccess,
		Role:      entities.RoleShipper,
		Party:     ShipperParty,
	},
	{
		Operation: RecordDemurrage,
		Role:      entities.RoleTerminalOperator,
		Party:     AnyParty,
		From: []entities.ShipmentStatus{
			entities.StatusPickedUp,
			entities.StatusInTransit,
			entities.StatusDelivered,
		},
	},
}

// Rules копия таблицы.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

func Lookup(op Operation) (Rule, error) {
	for _, r := range rules {
		if r.Operation == op {
			return r, nil
		}
	}
	return Rule{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}

// ForTarget находит переход статуса, ведущий в target. Created и незнакомые
// статусы не являются целью ни одного перехода.
func ForTarget(target entities.ShipmentStatus) (Rule, error) {
	for _, r := range rules {
		if r.From != nil && r.To != "" && r.To == target {
			return r, nil
		}
	}
	return Rule{}, fmt.Errorf("no transition into %q: %w", target, entities.ErrInvalidStatus)
}

// Authorize проверяет роль и, если правило привязано к стороне отправки,
// что вызывающий именно этот участник. Нужны оба совпадения.
func (r Rule) Authorize(caller entities.Address, role entities.Role, s *entities.Shipment) error {
	if caller.IsNull() || role != r.Role {
		return fmt.Errorf("%s requires role %s, caller has %s: %w", r.Operation, r.Role, role, entities.ErrUnauthorized)
	}
	if r.Party == AnyParty {
		return nil
	}
	if s == nil || caller != r.party(s) {
		return fmt.Errorf("%s requires the shipment %s: %w", r.Operation, r.Role, entities.ErrUnauthorized)
	}
	return nil
}

func (r Rule) CheckState(s *entities.Shipment) error {
	if r.From == nil {
		return nil
	}
	if s == nil || !slices.Contains(r.From, s.Status) {
		var current entities.ShipmentStatus
		if s != nil {
			current = s.Status
		}
		return fmt.Errorf("%s not allowed from %q: %w", r.Operation, current, entities.ErrInvalidStatus)
	}
	return nil
}

// Evaluate проверка прав, затем статуса.
func Evaluate(op Operation, caller entities.Address, role entities.Role, s *entities.Shipment) error {
	r, err := Lookup(op)
	if err != nil {
		return err
	}
	if err := r.Authorize(caller, role, s); err != nil {
		return err
	}
	return r.CheckState(s)
}

func (r Rule) party(s *entities.Shipment) entities.Address {
	switch r.Party {
	case ShipperParty:
		return s.Shipper
	case CarrierParty:
		return s.Carrier
	case ConsigneeParty:
		return s.Consignee
	default:
		return entities.NullAddress
	}
}
