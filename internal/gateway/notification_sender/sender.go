// Package notification_sender граница доставки уведомлений. Реальный
// транспорт (SMS, push) живет вне движка, здесь интент разворачивается
// в человекочитаемое сообщение и уходит в лог.
package notification_sender

import (
	"context"
	"fmt"

	"service/internal/entities"
	"service/pkg/logger"
)

type LogSender struct {
	log logger.Logger
}

func NewLogSender(log logger.Logger) *LogSender {
	return &LogSender{
		log: log.With(),
	}
}

func (s *LogSender) Send(ctx context.Context, intent entities.NotificationIntent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.With(
		logger.NewField("order", intent.OrderID),
		logger.NewField("recipient", intent.Recipient.String()),
		logger.NewField("kind", intent.Kind.String()),
		logger.NewField("message", renderMessage(intent)),
	).Info("notification delivered")

	return nil
}

func renderMessage(intent entities.NotificationIntent) string {
	switch payload := intent.Payload.(type) {
	case entities.StatusChangePayload:
		if payload.From == "" {
			return fmt.Sprintf("order %s registered, current status %s", intent.OrderID, payload.To)
		}
		return fmt.Sprintf("order %s moved %s -> %s", intent.OrderID, payload.From, payload.To)
	case entities.AssignmentPayload:
		switch {
		case payload.New != nil:
			return fmt.Sprintf("order %s: courier %s is on the way", intent.OrderID, payload.New.Name)
		case payload.Previous != nil:
			return fmt.Sprintf("order %s: courier %s released", intent.OrderID, payload.Previous.Name)
		}
	}
	return fmt.Sprintf("order %s: %s", intent.OrderID, intent.Kind)
}
