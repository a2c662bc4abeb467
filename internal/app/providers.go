package app

import (
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"ledger/internal/entities"
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
	"ledger/pkg/querier"
	"ledger/pkg/tx"
)

// ledgerWriteLockKey ключ pg_advisory_xact_lock, общий для всех пишущих
// операций леджера.
const ledgerWriteLockKey int64 = 0x6c6564676572

// WriteTxManager менеджер с глобальной блокировкой записи.
type WriteTxManager struct {
	*tx.Manager
}

func provideWriteTxManager(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *WriteTxManager {
	return &WriteTxManager{
		Manager: tx.New(pool, getter, tx.WithWriteLock(ledgerWriteLockKey)),
	}
}

func provideTxManager(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *tx.Manager {
	return tx.New(pool, getter)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

// provideRegistrar адрес уже нормализован при валидации конфига.
func provideRegistrar(cfg *config.Config) entities.Address {
	return entities.Address(cfg.Ledger.Registrar)
}

func provideActorRepository(q *querier.Querier) *actorRepo.Repository {
	return actorRepo.New(q)
}

func provideShipmentRepository(q *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(q)
}

func provideDocumentRepository(q *querier.Querier) *documentRepo.Repository {
	return documentRepo.New(q)
}

func provideDemurrageRepository(q *querier.Querier) *demurrageRepo.Repository {
	return demurrageRepo.New(q)
}

func provideEventRepository(q *querier.Querier) *eventRepo.Repository {
	return eventRepo.New(q)
}

func provideOutboxRepository(q *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(q)
}

func provideCheckpointRepository(q *querier.Querier) *checkpointRepo.Repository {
	return checkpointRepo.New(q)
}

func provideMemoryActors(store *memory.Store) *memory.Actors {
	return store.Actors()
}

func provideMemoryShipments(store *memory.Store) *memory.Shipments {
	return store.Shipments()
}

func provideMemoryDocuments(store *memory.Store) *memory.Documents {
	return store.Documents()
}

func provideMemoryDemurrage(store *memory.Store) *memory.Demurrage {
	return store.Demurrage()
}

func provideMemoryEvents(store *memory.Store) *memory.Events {
	return store.Events()
}

func provideMemoryOutbox(store *memory.Store) *memory.Outbox {
	return store.Outbox()
}

func provideJournal(repository journal.Repository) *journal.Journal {
	return journal.New(repository)
}

func provideServiceActor(
	repository actorService.Repository,
	journal actorService.Journal,
	txManager actorService.TxManager,
	registrar entities.Address,
) *actorService.Actor {
	return actorService.New(repository, journal, txManager, registrar)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	actors shipmentService.ActorRegistry,
	journal shipmentService.Journal,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, actors, journal, txManager)
}

func provideServiceDocument(
	repository documentService.Repository,
	shipments documentService.ShipmentReader,
	actors documentService.ActorRegistry,
	journal documentService.Journal,
	txManager documentService.TxManager,
) *documentService.Document {
	return documentService.New(repository, shipments, actors, journal, txManager)
}

func provideServiceDemurrage(
	repository demurrageService.Repository,
	shipments demurrageService.ShipmentReader,
	actors demurrageService.ActorRegistry,
	journal demurrageService.Journal,
	txManager demurrageService.TxManager,
) *demurrageService.Demurrage {
	return demurrageService.New(repository, shipments, actors, journal, txManager)
}

func providePayloadCheckFactory() *payload_check.PayloadCheckFactory {
	return payload_check.New()
}

func provideServiceAudit(
	checkpoints auditService.CheckpointRepository,
	checkers auditService.PayloadCheckerFactory,
	txManager auditService.TxManager,
) *auditService.Service {
	return auditService.New(checkpoints, checkers, txManager)
}
