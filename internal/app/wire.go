//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"math/rand"
	"time"

	courierRepo "service/internal/repository/courier"
	orderRepo "service/internal/repository/order"

	"service/internal/gateway/notification_sender"

	"service/internal/handlers/rest/courier_get"
	"service/internal/handlers/rest/couriers_get"
	"service/internal/handlers/rest/dispatch_assign_post"
	"service/internal/handlers/rest/dispatch_unassign_post"
	"service/internal/handlers/rest/order_delete"
	"service/internal/handlers/rest/order_get"
	"service/internal/handlers/rest/order_post"
	"service/internal/handlers/rest/order_transition_post"
	"service/internal/handlers/rest/orders_get"
	"service/internal/handlers/tasks/overdue_orders"
	"service/internal/pkg/clock"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/delivery_estimate"
	"service/internal/pkg/factory/order_id"
	"service/internal/pkg/factory/price_estimate"
	dispatchService "service/internal/service/dispatch"
	"service/internal/service/notification"
	orderService "service/internal/service/order"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OverdueScanInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceDispatch   ServiceDispatch
	Roster            Roster
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_delete.Service
	order_transition_post.Service
}

type ServiceDispatch interface {
	dispatch_assign_post.Service
	dispatch_unassign_post.Service
}

type Roster interface {
	courier_get.Service
	couriers_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	sink notification.Sink,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOverdueScanInterval,

		provideOrderRepository,
		provideCourierRepository,

		provideClock,
		provideOrderIDGenerator,
		providePriceEstimator,
		delivery_estimate.New,

		provideNotificationTrigger,
		providePurgeCollaborators,
		provideServiceOrder,
		provideServiceDispatch,

		provideOverdueOrdersTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(Roster), new(*courierRepo.Repository)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.IDGenerator), new(*order_id.Generator)),
		wire.Bind(new(orderService.Estimator), new(*price_estimate.Estimator)),
		wire.Bind(new(orderService.DeliveryTimeFactory), new(*delivery_estimate.DeliveryTimeFactory)),
		wire.Bind(new(orderService.Clock), new(*clock.System)),
		wire.Bind(new(orderService.Notifier), new(*notification.Trigger)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatchService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.Roster), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.Notifier), new(*notification.Trigger)),
		wire.Bind(new(dispatchService.Clock), new(*clock.System)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(overdue_orders.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type WorkerApplication struct {
	Sender *notification_sender.LogSender
}

// InitializeWorkerApplication для воркера доставки уведомлений
// (cmd/worker-notification-sender)
func InitializeWorkerApplication(
	log logger.Logger,
) (*WorkerApplication, error) {
	wire.Build(
		notification_sender.NewLogSender,

		wire.Struct(new(WorkerApplication), "*"),
	)
	return &WorkerApplication{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideClock(cfg *config.Config) (*clock.System, error) {
	return clock.NewSystem(cfg.Engine.Timezone)
}

func provideOrderIDGenerator(cfg *config.Config, clk *clock.System) *order_id.Generator {
	return order_id.New(cfg.Engine.OrderIDPrefix, clk, rand.NewSource(time.Now().UnixNano()))
}

func providePriceEstimator() *price_estimate.Estimator {
	return price_estimate.New(rand.NewSource(time.Now().UnixNano()))
}

func provideNotificationTrigger(log logger.Logger, sink notification.Sink) *notification.Trigger {
	return notification.New(log, sink)
}

// providePurgeCollaborators точка регистрации зависимых потребителей
// purge (финансы, трекинг). Они живут в соседних сервисах, внутри
// движка список пуст.
func providePurgeCollaborators() []orderService.PurgeCollaborator {
	return []orderService.PurgeCollaborator{}
}

func provideServiceOrder(
	repository orderService.Repository,
	idGenerator orderService.IDGenerator,
	estimator orderService.Estimator,
	timeFactory orderService.DeliveryTimeFactory,
	clk orderService.Clock,
	notifier orderService.Notifier,
	purgers []orderService.PurgeCollaborator,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(
		repository,
		idGenerator,
		estimator,
		timeFactory,
		clk,
		notifier,
		purgers,
		txManager,
	)
}

func provideServiceDispatch(
	repository dispatchService.Repository,
	roster dispatchService.Roster,
	notifier dispatchService.Notifier,
	clk dispatchService.Clock,
	txManager dispatchService.TxManager,
) *dispatchService.Dispatch {
	return dispatchService.New(
		repository,
		roster,
		notifier,
		clk,
		txManager,
	)
}

func provideOverdueScanInterval(cfg *config.Config) OverdueScanInterval {
	return OverdueScanInterval(cfg.Tasks.OverdueOrdersScanInterval)
}

func provideOverdueOrdersTask(
	log logger.Logger,
	orderSvc overdue_orders.Service,
	interval OverdueScanInterval,
) *overdue_orders.OverdueOrders {
	return overdue_orders.NewOverdueOrders(log, orderSvc, time.Duration(interval))
}

func provideTaskList(
	overdueOrdersTask *overdue_orders.OverdueOrders,
) []background.Task {
	return []background.Task{
		overdueOrdersTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
