package payload_check

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"ledger/internal/entities"
	"ledger/internal/service/audit"
)

// PayloadCheckFactory отдает проверку payload для каждого типа события.
// Проверки не доверяют API: payload должен сходиться с заголовком события.
type PayloadCheckFactory struct{}

func New() *PayloadCheckFactory {
	return &PayloadCheckFactory{}
}

func (f *PayloadCheckFactory) GetChecker(eventType entities.EventType) (audit.CheckFn, error) {
	switch eventType {
	case entities.EventActorRegistered:
		return f.actorRegistered, nil
	case entities.EventShipmentCreated:
		return f.shipmentCreated, nil
	case entities.EventShipmentDetailsAdded:
		return f.shipmentDetailsAdded, nil
	case entities.EventShipmentStatusUpdated:
		return f.shipmentStatusUpdated, nil
	case entities.EventDocumentAdded:
		return f.documentAdded, nil
	case entities.EventDocumentAccessGranted:
		return f.documentAccessGranted, nil
	case entities.EventDemurrageRecorded:
		return f.demurrageRecorded, nil
	case entities.EventDemurragePaid:
		return f.demurragePaid, nil
	default:
		return nil, fmt.Errorf("%w: %s", audit.ErrUndefinedEventType, eventType)
	}
}

func (f *PayloadCheckFactory) actorRegistered(event *entities.Event) error {
	p, err := decode[entities.ActorRegisteredPayload](event)
	if err != nil {
		return err
	}
	if event.ShipmentID != 0 {
		return malformed("registry event bound to shipment %d", event.ShipmentID)
	}
	if err := checkAddress("identity", p.Identity); err != nil {
		return err
	}
	if !p.Role.Assignable() {
		return malformed("role %q is not assignable", p.Role)
	}
	return nil
}

func (f *PayloadCheckFactory) shipmentCreated(event *entities.Event) error {
	p, err := decode[entities.ShipmentCreatedPayload](event)
	if err != nil {
		return err
	}
	if err := checkShipmentID(event, p.ID); err != nil {
		return err
	}
	for name, addr := range map[string]entities.Address{
		"shipper":   p.Shipper,
		"carrier":   p.Carrier,
		"consignee": p.Consignee,
	} {
		if err := checkAddress(name, addr); err != nil {
			return err
		}
	}
	if p.Shipper != event.Actor {
		return malformed("shipper %s is not the caller %s", p.Shipper, event.Actor)
	}
	if p.ContainerType != entities.DefaultContainerType || p.WeightKg != 0 {
		return malformed("new shipment carries cargo details")
	}
	return nil
}

func (f *PayloadCheckFactory) shipmentDetailsAdded(event *entities.Event) error {
	p, err := decode[entities.ShipmentDetailsAddedPayload](event)
	if err != nil {
		return err
	}
	if err := checkShipmentID(event, p.ID); err != nil {
		return err
	}
	if !p.ContainerType.Known() {
		return malformed("unknown container type %q", p.ContainerType)
	}
	if p.WeightKg < 0 {
		return malformed("negative weight %d", p.WeightKg)
	}
	return nil
}

func (f *PayloadCheckFactory) shipmentStatusUpdated(event *entities.Event) error {
	p, err := decode[entities.ShipmentStatusUpdatedPayload](event)
	if err != nil {
		return err
	}
	if err := checkShipmentID(event, p.ID); err != nil {
		return err
	}
	if !p.Status.Known() || p.Status == entities.StatusCreated {
		return malformed("status %q is not a transition target", p.Status)
	}
	if p.UpdatedBy != event.Actor {
		return malformed("updatedBy %s is not the caller %s", p.UpdatedBy, event.Actor)
	}
	return nil
}

func (f *PayloadCheckFactory) documentAdded(event *entities.Event) error {
	p, err := decode[entities.DocumentAddedPayload](event)
	if err != nil {
		return err
	}
	if err := checkShipmentID(event, p.ID); err != nil {
		return err
	}
	if strings.TrimSpace(p.Hash) == "" || strings.TrimSpace(p.Location) == "" {
		return malformed("empty document hash or location")
	}
	if p.AddedBy != event.Actor {
		return malformed("addedBy %s is not the caller %s", p.AddedBy, event.Actor)
	}
	return nil
}

func (f *PayloadCheckFactory) documentAccessGranted(event *entities.Event) error {
	p, err := decode[entities.DocumentAccessGrantedPayload](event)
	if err != nil {
		return err
	}
	if err := checkShipmentID(event, p.ID); err != nil {
		return err
	}
	if strings.TrimSpace(p.Hash) == "" {
		return malformed("empty document hash")
	}
	if err := checkAddress("grantee", p.Grantee); err != nil {
		return err
	}
	if p.Grantor != event.Actor {
		return malformed("grantor %s is not the caller %s", p.Grantor, event.Actor)
	}
	return nil
}

func (f *PayloadCheckFactory) demurrageRecorded(event *entities.Event) error {
	p, err := decode[entities.DemurrageRecordedPayload](event)
	if err != nil {
		return err
	}
	if err := checkShipmentID(event, p.ID); err != nil {
		return err
	}
	if p.Amount < 0 {
		return malformed("negative amount %d", p.Amount)
	}
	if err := checkAddress("payee", p.Payee); err != nil {
		return err
	}
	if p.RecordedBy != event.Actor {
		return malformed("recordedBy %s is not the caller %s", p.RecordedBy, event.Actor)
	}
	return nil
}

func (f *PayloadCheckFactory) demurragePaid(event *entities.Event) error {
	p, err := decode[entities.DemurragePaidPayload](event)
	if err != nil {
		return err
	}
	if err := checkShipmentID(event, p.ID); err != nil {
		return err
	}
	if p.Amount < 0 {
		return malformed("negative amount %d", p.Amount)
	}
	if p.Payee != event.Actor {
		return malformed("payee %s is not the caller %s", p.Payee, event.Actor)
	}
	return nil
}

// decode строгий: лишние поля в payload считаются подделкой.
func decode[T any](event *entities.Event) (*T, error) {
	var payload T
	dec := json.NewDecoder(bytes.NewReader(event.Payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", audit.ErrMalformedPayload, event.Type, err)
	}
	if dec.More() {
		return nil, malformed("trailing data after %s payload", event.Type)
	}
	return &payload, nil
}

func checkShipmentID(event *entities.Event, id int64) error {
	if id <= 0 || id != event.ShipmentID {
		return malformed("payload id %d does not match shipment %d", id, event.ShipmentID)
	}
	return nil
}

func checkAddress(name string, addr entities.Address) error {
	parsed, err := entities.ParseAddress(addr.String())
	if err != nil || parsed.IsNull() || parsed != addr {
		return malformed("%s %q is not a registered identity form", name, addr)
	}
	return nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", audit.ErrMalformedPayload, fmt.Sprintf(format, args...))
}
