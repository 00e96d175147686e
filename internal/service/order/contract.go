//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, id string, orderModify entities.OrderModify) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Delete(ctx context.Context, id string) error

	CountOverdueInTransit(ctx context.Context, asOf time.Time) (int64, error)
}

type IDGenerator interface {
	Generate() string
}

type Estimator interface {
	Estimate(
		senderAddress, receiverAddress string,
		weightKg float64,
		packageType entities.PackageType,
		serviceTier entities.ServiceTierType,
	) (entities.PriceQuote, error)
}

type DeliveryTimeFactory interface {
	CalculateEstimate(tier entities.ServiceTierType, distanceKm float64, baseTime time.Time) time.Time
}

type Clock interface {
	Now() time.Time
}

type Notifier interface {
	OnLifecycleEvent(ctx context.Context, orderEntity *entities.Order, from, to entities.OrderStatusType)
}

// PurgeCollaborator внешний потребитель (финансы, трекинг), хранящий
// записи по id заказа. При административном удалении заказа каждый
// коллаборатор зовется ровно один раз.
type PurgeCollaborator interface {
	Name() string
	PurgeOrder(ctx context.Context, orderID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
