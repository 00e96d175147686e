//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, id string, orderModify entities.OrderModify) (*entities.Order, error)
}

// Roster реестр курьеров, принадлежит внешнему employee-directory.
// Движок курьеров не создает и не изменяет.
type Roster interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
}

type Notifier interface {
	OnLifecycleEvent(ctx context.Context, orderEntity *entities.Order, from, to entities.OrderStatusType)
	OnAssignmentEvent(ctx context.Context, orderEntity *entities.Order, previous, assigned *entities.CourierRef)
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
