//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

// Sink граница транспорта доставки уведомлений (push/SMS/email вне
// зоны ответственности движка). Вызов fire-and-forget, ретраев нет.
type Sink interface {
	Deliver(ctx context.Context, intent entities.NotificationIntent) error
}

type triggerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
