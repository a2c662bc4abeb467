package app

import (
	"ledger/internal/handlers/rest/actor_get"
	"ledger/internal/handlers/rest/actor_post"
	"ledger/internal/handlers/rest/demurrage_get"
	"ledger/internal/handlers/rest/demurrage_paid_post"
	"ledger/internal/handlers/rest/demurrage_post"
	"ledger/internal/handlers/rest/document_access_get"
	"ledger/internal/handlers/rest/document_access_post"
	"ledger/internal/handlers/rest/document_hash_get"
	"ledger/internal/handlers/rest/document_location_get"
	"ledger/internal/handlers/rest/document_post"
	"ledger/internal/handlers/rest/events_get"
	"ledger/internal/handlers/rest/healthcheck_head"
	"ledger/internal/handlers/rest/registrar_get"
	"ledger/internal/handlers/rest/shipment_details_post"
	"ledger/internal/handlers/rest/shipment_get"
	"ledger/internal/handlers/rest/shipment_next_id_get"
	"ledger/internal/handlers/rest/shipment_post"
	"ledger/internal/handlers/rest/shipment_status_put"
	"ledger/internal/handlers/tasks/journal_verify"
	"ledger/internal/handlers/tasks/outbox_relay"
	auditService "ledger/internal/service/audit"
)

type Application struct {
	ServiceActor     ServiceActor
	ServiceShipment  ServiceShipment
	ServiceDocument  ServiceDocument
	ServiceDemurrage ServiceDemurrage
	ServiceJournal   ServiceJournal
	OutboxCursor     OutboxCursor
	Storage          Storage
}

type ServiceActor interface {
	actor_post.Service
	actor_get.Service
	registrar_get.Service
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipment_next_id_get.Service
	shipment_details_post.Service
	shipment_status_put.Service
}

type ServiceDocument interface {
	document_post.Service
	document_access_post.Service
	document_access_get.Service
	document_hash_get.Service
	document_location_get.Service
}

type ServiceDemurrage interface {
	demurrage_post.Service
	demurrage_get.Service
	demurrage_paid_post.Service
}

type ServiceJournal interface {
	events_get.Service
	outbox_relay.Journal
	journal_verify.Verifier
}

type OutboxCursor interface {
	outbox_relay.CursorRepository
}

type Storage interface {
	healthcheck_head.Storage
}

type AuditWorkerApp struct {
	AuditService *auditService.Service
}
