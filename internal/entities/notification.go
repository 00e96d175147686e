package entities

// NotificationIntent декларативное описание уведомления: кому, про какой
// заказ и по какому шаблону. Доставкой занимается внешний транспорт,
// движок интенты только формирует.
type NotificationIntent struct {
	Recipient RecipientRole
	OrderID   string
	Kind      IntentKind
	Payload   IntentPayload
}

type RecipientRole string

const (
	RecipientCustomer RecipientRole = "customer"
	RecipientCourier  RecipientRole = "courier"
)

func (r RecipientRole) String() string {
	return string(r)
}

// IntentKind закрытый набор видов уведомлений. Новый вид добавляется
// здесь и в маппинге триггера, рантайм-строк со стороны не бывает.
type IntentKind string

const (
	IntentOrderCreated     IntentKind = "order_created"
	IntentOrderAccepted    IntentKind = "order_accepted"
	IntentOrderPickedUp    IntentKind = "order_picked_up"
	IntentOrderInTransit   IntentKind = "order_in_transit"
	IntentOrderDelivered   IntentKind = "order_delivered"
	IntentOrderCancelled   IntentKind = "order_cancelled"
	IntentCourierAssigned  IntentKind = "courier_assigned"
	IntentCourierReleased  IntentKind = "courier_released"
)

func (k IntentKind) String() string {
	return string(k)
}

// IntentPayload тегированное объединение: на каждый вид интента свой
// структурный payload, общий интерфейс исключает произвольные map'ы.
type IntentPayload interface {
	isIntentPayload()
}

// StatusChangePayload для интентов жизненного цикла заказа.
// From пустой для order_created.
type StatusChangePayload struct {
	From  OrderStatusType
	To    OrderStatusType
	Actor string
}

func (StatusChangePayload) isIntentPayload() {}

// AssignmentPayload для интентов назначения/снятия курьера.
// Previous nil при первом назначении, New nil при снятии.
type AssignmentPayload struct {
	Previous *CourierRef
	New      *CourierRef
}

func (AssignmentPayload) isIntentPayload() {}
