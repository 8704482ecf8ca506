package booking_cancelled

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type Handler struct {
	dispatchService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dispatchService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		dispatchService:          dispatchService,
		log:                      handlerLog,
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
				// Messages() закрыт — выходим
				h.log.Info("booking.cancelled: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("booking.cancelled: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event cancelledEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("booking.cancelled handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("service", event.ServiceID),
		logger.NewField("cancelled_by", event.CancelledBy),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("booking.cancelled processing")

	service, err := h.dispatchService.ChangeStatus(ctx, dispatch.ChangeStatusParams{
		ServiceID: event.ServiceID,
		Target:    entities.ServiceCancelled.String(),
		Notes:     event.Reason,
		ActorID:   event.CancelledBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.cancelled handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, dispatch.ErrTransactionFailure):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.cancelled handler transaction aborted, message will be reprocessed")
			return true

		case errors.Is(err, dispatch.ErrServiceNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.cancelled handler unknown service")

		case errors.Is(err, dispatch.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.cancelled handler service already in a terminal status")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.cancelled handler failed to cancel service")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("service", service.ID),
		logger.NewField("current_status", service.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("booking.cancelled: processed")

	sess.MarkMessage(message, "")
	return false
}
