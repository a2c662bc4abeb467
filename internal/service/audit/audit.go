package audit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"ledger/internal/entities"
	"ledger/internal/service/journal"
)

// Service независимо от API проверяет цепочку событий, пришедших из Kafka,
// и двигает checkpoint только по проверенным событиям.
type Service struct {
	checkpoints CheckpointRepository
	checkers    PayloadCheckerFactory
	txManager   TxManager
}

func New(checkpoints CheckpointRepository, checkers PayloadCheckerFactory, txManager TxManager) *Service {
	return &Service{
		checkpoints: checkpoints,
		checkers:    checkers,
		txManager:   txManager,
	}
}

func (s *Service) ProcessEvent(ctx context.Context, event entities.Event) (*entities.AuditCheckpoint, error) {
	check, err := s.checkers.GetChecker(event.Type)
	if err != nil {
		AuditedEventsTotal.WithLabelValues(event.Type.String(), "undefined").Inc()
		return nil, err
	}
	if err := check(&event); err != nil {
		AuditedEventsTotal.WithLabelValues(event.Type.String(), "malformed").Inc()
		return nil, fmt.Errorf("event %d: %w", event.Sequence, err)
	}

	var checkpoint entities.AuditCheckpoint
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.checkpoints.Get(ctx)
		if err != nil {
			return fmt.Errorf("get audit checkpoint: %w", err)
		}

		// повторная доставка уже проверенного события
		if event.Sequence <= current.LastSequence {
			if event.Sequence == current.LastSequence && !bytes.Equal(event.Hash, current.LastHash) {
				return fmt.Errorf("%w: event %d differs from the audited one", journal.ErrChainBroken, event.Sequence)
			}
			return ErrDuplicateEvent
		}

		verifier := journal.NewVerifier(current.LastSequence, current.LastHash)
		if err := verifier.Next(&event); err != nil {
			return err
		}

		checkpoint = entities.AuditCheckpoint{
			LastSequence: verifier.LastSequence(),
			LastHash:     verifier.LastHash(),
			UpdatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		}
		if err := s.checkpoints.Save(ctx, checkpoint); err != nil {
			return fmt.Errorf("save audit checkpoint: %w", err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEvent):
			AuditedEventsTotal.WithLabelValues(event.Type.String(), "duplicate").Inc()
		case errors.Is(err, journal.ErrChainBroken), errors.Is(err, journal.ErrSequenceGap):
			AuditedEventsTotal.WithLabelValues(event.Type.String(), "broken").Inc()
		default:
			AuditedEventsTotal.WithLabelValues(event.Type.String(), "error").Inc()
		}
		return nil, err
	}

	AuditedEventsTotal.WithLabelValues(event.Type.String(), "ok").Inc()
	AuditCheckpointSequence.Set(float64(checkpoint.LastSequence))
	return &checkpoint, nil
}
