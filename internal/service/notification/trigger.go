package notification

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

// route получатели интента для конкретного вида события.
type route struct {
	kind       entities.IntentKind
	recipients []entities.RecipientRole
}

// lifecycleRoutes тотальный маппинг: у каждого достижимого статуса есть
// сконфигурированный интент. Статус без маршрута был бы молчаливым
// no-op, не ошибкой.
var lifecycleRoutes = map[entities.OrderStatusType]route{
	entities.OrderPending: {
		kind:       entities.IntentOrderCreated,
		recipients: []entities.RecipientRole{entities.RecipientCustomer},
	},
	entities.OrderAccepted: {
		kind:       entities.IntentOrderAccepted,
		recipients: []entities.RecipientRole{entities.RecipientCustomer, entities.RecipientCourier},
	},
	entities.OrderPickedUp: {
		kind:       entities.IntentOrderPickedUp,
		recipients: []entities.RecipientRole{entities.RecipientCustomer, entities.RecipientCourier},
	},
	entities.OrderInTransit: {
		kind:       entities.IntentOrderInTransit,
		recipients: []entities.RecipientRole{entities.RecipientCustomer},
	},
	entities.OrderDelivered: {
		kind:       entities.IntentOrderDelivered,
		recipients: []entities.RecipientRole{entities.RecipientCustomer, entities.RecipientCourier},
	},
	entities.OrderCancelled: {
		kind:       entities.IntentOrderCancelled,
		recipients: []entities.RecipientRole{entities.RecipientCustomer, entities.RecipientCourier},
	},
}

// Trigger превращает события жизненного цикла и назначения в интенты
// уведомлений и передает их в Sink. Состояния не держит, доставку не
// подтверждает: ошибка транспорта логируется и не влияет на операцию,
// которая событие породила.
type Trigger struct {
	log  triggerLogger
	sink Sink
}

func New(log triggerLogger, sink Sink) *Trigger {
	return &Trigger{
		log:  log.With(),
		sink: sink,
	}
}

func (t *Trigger) OnLifecycleEvent(ctx context.Context, orderEntity *entities.Order, from, to entities.OrderStatusType) {
	r, ok := lifecycleRoutes[to]
	if !ok {
		return
	}

	payload := entities.StatusChangePayload{From: from, To: to}
	for _, recipient := range r.recipients {
		// курьерский интент без привязанного курьера некому доставлять
		if recipient == entities.RecipientCourier && orderEntity.Courier == nil {
			continue
		}
		t.deliver(ctx, entities.NotificationIntent{
			Recipient: recipient,
			OrderID:   orderEntity.ID,
			Kind:      r.kind,
			Payload:   payload,
		})
	}
}

func (t *Trigger) OnAssignmentEvent(ctx context.Context, orderEntity *entities.Order, previous, assigned *entities.CourierRef) {
	payload := entities.AssignmentPayload{Previous: previous, New: assigned}

	if assigned != nil {
		t.deliver(ctx, entities.NotificationIntent{
			Recipient: entities.RecipientCustomer,
			OrderID:   orderEntity.ID,
			Kind:      entities.IntentCourierAssigned,
			Payload:   payload,
		})
		t.deliver(ctx, entities.NotificationIntent{
			Recipient: entities.RecipientCourier,
			OrderID:   orderEntity.ID,
			Kind:      entities.IntentCourierAssigned,
			Payload:   payload,
		})
	}

	// прежнему курьеру при переназначении или снятии
	if previous != nil && (assigned == nil || previous.ID != assigned.ID) {
		t.deliver(ctx, entities.NotificationIntent{
			Recipient: entities.RecipientCourier,
			OrderID:   orderEntity.ID,
			Kind:      entities.IntentCourierReleased,
			Payload:   payload,
		})
	}

	if assigned == nil {
		t.deliver(ctx, entities.NotificationIntent{
			Recipient: entities.RecipientCustomer,
			OrderID:   orderEntity.ID,
			Kind:      entities.IntentCourierReleased,
			Payload:   payload,
		})
	}
}

func (t *Trigger) deliver(ctx context.Context, intent entities.NotificationIntent) {
	if err := t.sink.Deliver(ctx, intent); err != nil {
		t.log.With(
			logger.NewField("order_id", intent.OrderID),
			logger.NewField("kind", intent.Kind.String()),
			logger.NewField("recipient", intent.Recipient.String()),
			logger.NewField("error", err),
		).Error("deliver notification intent")
	}
}

// NopSink заглушка на случай отсутствия транспорта уведомлений:
// триггер деградирует до no-op вместо проверок наличия модуля в рантайме.
type NopSink struct{}

func NewNopSink() *NopSink {
	return &NopSink{}
}

func (*NopSink) Deliver(context.Context, entities.NotificationIntent) error {
	return nil
}
