//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_transition_post_test
package order_transition_post

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	TransitionOrder(ctx context.Context, orderID string, target entities.OrderStatusType, actor string) (*entities.Order, error)
}
