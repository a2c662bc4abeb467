//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"ledger/internal/pkg/config"
	"ledger/internal/pkg/factory/payload_check"
	actorRepo "ledger/internal/repository/actor"
	checkpointRepo "ledger/internal/repository/checkpoint"
	demurrageRepo "ledger/internal/repository/demurrage"
	documentRepo "ledger/internal/repository/document"
	eventRepo "ledger/internal/repository/event"
	"ledger/internal/repository/memory"
	outboxRepo "ledger/internal/repository/outbox"
	shipmentRepo "ledger/internal/repository/shipment"
	actorService "ledger/internal/service/actor"
	auditService "ledger/internal/service/audit"
	demurrageService "ledger/internal/service/demurrage"
	documentService "ledger/internal/service/document"
	"ledger/internal/service/journal"
	shipmentService "ledger/internal/service/shipment"
	"ledger/pkg/logger"
	"ledger/pkg/tx"
)

// serviceSet сервисы леджера поверх любого хранилища.
var serviceSet = wire.NewSet(
	provideRegistrar,
	provideJournal,
	provideServiceActor,
	provideServiceShipment,
	provideServiceDocument,
	provideServiceDemurrage,

	wire.Struct(new(Application), "*"),

	wire.Bind(new(ServiceActor), new(*actorService.Actor)),
	wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
	wire.Bind(new(ServiceDocument), new(*documentService.Document)),
	wire.Bind(new(ServiceDemurrage), new(*demurrageService.Demurrage)),
	wire.Bind(new(ServiceJournal), new(*journal.Journal)),

	wire.Bind(new(actorService.Journal), new(*journal.Journal)),
	wire.Bind(new(shipmentService.Journal), new(*journal.Journal)),
	wire.Bind(new(documentService.Journal), new(*journal.Journal)),
	wire.Bind(new(demurrageService.Journal), new(*journal.Journal)),

	wire.Bind(new(shipmentService.ActorRegistry), new(*actorService.Actor)),
	wire.Bind(new(documentService.ActorRegistry), new(*actorService.Actor)),
	wire.Bind(new(demurrageService.ActorRegistry), new(*actorService.Actor)),
	wire.Bind(new(documentService.ShipmentReader), new(*shipmentService.Shipment)),
	wire.Bind(new(demurrageService.ShipmentReader), new(*shipmentService.Shipment)),
)

// InitializePostgresApplication для HTTP сервиса (cmd/service) с STORAGE_DRIVER=postgres
func InitializePostgresApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		serviceSet,

		provideWriteTxManager,
		provideQuerier,

		provideActorRepository,
		provideShipmentRepository,
		provideDocumentRepository,
		provideDemurrageRepository,
		provideEventRepository,
		provideOutboxRepository,

		wire.Bind(new(Storage), new(*pgxpool.Pool)),
		wire.Bind(new(OutboxCursor), new(*outboxRepo.Repository)),

		wire.Bind(new(journal.Repository), new(*eventRepo.Repository)),
		wire.Bind(new(actorService.Repository), new(*actorRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(documentService.Repository), new(*documentRepo.Repository)),
		wire.Bind(new(demurrageService.Repository), new(*demurrageRepo.Repository)),

		wire.Bind(new(actorService.TxManager), new(*WriteTxManager)),
		wire.Bind(new(shipmentService.TxManager), new(*WriteTxManager)),
		wire.Bind(new(documentService.TxManager), new(*WriteTxManager)),
		wire.Bind(new(demurrageService.TxManager), new(*WriteTxManager)),
	)
	return &Application{}, nil
}

// InitializeMemoryApplication для HTTP сервиса с STORAGE_DRIVER=memory
func InitializeMemoryApplication(
	ctx context.Context,
	log logger.Logger,
	store *memory.Store,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		serviceSet,

		provideMemoryActors,
		provideMemoryShipments,
		provideMemoryDocuments,
		provideMemoryDemurrage,
		provideMemoryEvents,
		provideMemoryOutbox,

		wire.Bind(new(Storage), new(*memory.Store)),
		wire.Bind(new(OutboxCursor), new(*memory.Outbox)),

		wire.Bind(new(journal.Repository), new(*memory.Events)),
		wire.Bind(new(actorService.Repository), new(*memory.Actors)),
		wire.Bind(new(shipmentService.Repository), new(*memory.Shipments)),
		wire.Bind(new(documentService.Repository), new(*memory.Documents)),
		wire.Bind(new(demurrageService.Repository), new(*memory.Demurrage)),

		wire.Bind(new(actorService.TxManager), new(*memory.Store)),
		wire.Bind(new(shipmentService.TxManager), new(*memory.Store)),
		wire.Bind(new(documentService.TxManager), new(*memory.Store)),
		wire.Bind(new(demurrageService.TxManager), new(*memory.Store)),
	)
	return &Application{}, nil
}

// InitializeAuditWorkerApp для Kafka воркера (cmd/worker-ledger-audit)
func InitializeAuditWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*AuditWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCheckpointRepository,
		providePayloadCheckFactory,
		provideServiceAudit,

		wire.Bind(new(auditService.CheckpointRepository), new(*checkpointRepo.Repository)),
		wire.Bind(new(auditService.PayloadCheckerFactory), new(*payload_check.PayloadCheckFactory)),
		wire.Bind(new(auditService.TxManager), new(*tx.Manager)),

		wire.Struct(new(AuditWorkerApp), "*"),
	)
	return nil, nil
}
