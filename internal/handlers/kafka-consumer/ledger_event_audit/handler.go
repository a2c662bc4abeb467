package ledger_event_audit

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"ledger/internal/pkg/eventcodec"
	auditservice "ledger/internal/service/audit"
	"ledger/internal/service/journal"
	"ledger/pkg/logger"
)

type Handler struct {
	auditService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, auditService Service, timeout time.Duration) *Handler {
	return &Handler{
		auditService:             auditService,
		log:                      log.With(logger.NewField("handler", "ledger.event.audit")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("ledger.event.audit: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("ledger.event.audit: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing проверяет одно событие.
// true: сообщение не помечено, ConsumeClaim нужно прервать, событие придет снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := eventcodec.Unmarshal(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("ledger.event.audit handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("sequence", event.Sequence),
		logger.NewField("type", event.Type.String()),
		logger.NewField("offset", message.Offset),
	)

	checkpoint, err := h.auditService.ProcessEvent(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("ledger.event.audit handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, auditservice.ErrDuplicateEvent):
			msgLog.Info("ledger.event.audit: duplicate delivery skipped")

		case errors.Is(err, journal.ErrChainBroken), errors.Is(err, journal.ErrSequenceGap):
			msgLog.With(
				logger.NewField("error", err),
			).Error("ledger.event.audit: LEDGER CHAIN INTEGRITY VIOLATION")

		case errors.Is(err, auditservice.ErrUndefinedEventType), errors.Is(err, auditservice.ErrMalformedPayload):
			msgLog.With(
				logger.NewField("error", err),
			).Error("ledger.event.audit: event payload rejected")

		default:
			// checkpoint не сохранился: без повтора аудит застрянет на дыре
			msgLog.With(
				logger.NewField("error", err),
			).Warn("ledger.event.audit handler failed, message will be reprocessed")
			return true
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("checkpoint", checkpoint.LastSequence),
	).Info("ledger.event.audit: verified")

	sess.MarkMessage(message, "")
	return false
}
