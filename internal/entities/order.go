package entities

import "time"

type Order struct {
	ID                  string
	Sender              Party
	Receiver            Party
	Package             Package
	ServiceTier         ServiceTierType
	DistanceKm          float64
	Amount              int64
	Status              OrderStatusType
	Courier             *CourierRef
	CreatedAt           time.Time
	EstimatedDeliveryAt time.Time
	Notes               []Note
}

type Party struct {
	Name    string
	Phone   string
	Address string
}

type Package struct {
	Type        PackageType
	WeightKg    float64
	Description string
}

// CourierRef это снимок данных курьера на момент назначения,
// не ссылка на актуальную запись реестра.
type CourierRef struct {
	ID    int64
	Name  string
	Phone string
}

// Note запись append-only аудит-лога заказа.
type Note struct {
	At   time.Time
	Text string
}

type PackageType string

const (
	PackageDocument    PackageType = "document"
	PackageElectronics PackageType = "electronics"
	PackageApparel     PackageType = "apparel"
	PackageFood        PackageType = "food"
	PackageOther       PackageType = "other"
)

func (p PackageType) String() string {
	return string(p)
}

func (p PackageType) IsValid() bool {
	switch p {
	case PackageDocument, PackageElectronics, PackageApparel, PackageFood, PackageOther:
		return true
	default:
		return false
	}
}

type ServiceTierType string

const (
	TierStandard ServiceTierType = "standard"
	TierExpress  ServiceTierType = "express"
	TierSameDay  ServiceTierType = "same_day"
)

func (t ServiceTierType) String() string {
	return string(t)
}

func (t ServiceTierType) IsValid() bool {
	switch t {
	case TierStandard, TierExpress, TierSameDay:
		return true
	default:
		return false
	}
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAccepted  OrderStatusType = "accepted"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	_, ok := nextStatuses[s]
	return ok
}

// IsTerminal: delivered и cancelled финальные, из них переходов нет.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// nextStatuses задает граф переходов:
//
//	pending -> accepted -> picked_up -> in_transit -> delivered
//
// cancelled достижим из любого нефинального статуса.
var nextStatuses = map[OrderStatusType][]OrderStatusType{
	OrderPending:   {OrderAccepted, OrderCancelled},
	OrderAccepted:  {OrderPickedUp, OrderCancelled},
	OrderPickedUp:  {OrderInTransit, OrderCancelled},
	OrderInTransit: {OrderDelivered, OrderCancelled},
	OrderDelivered: {},
	OrderCancelled: {},
}

func (s OrderStatusType) CanTransitionTo(target OrderStatusType) bool {
	for _, next := range nextStatuses[s] {
		if next == target {
			return true
		}
	}
	return false
}

// OrderDraft это входные данные создания заказа. Все производные поля
// (id, distance, amount, статус, таймстемпы) заполняет движок.
type OrderDraft struct {
	Sender      Party
	Receiver    Party
	Package     Package
	ServiceTier ServiceTierType
}

// OrderModify частичное обновление заказа. nil-поля не трогаются.
// Courier и ClearCourier взаимоисключающие: ClearCourier снимает привязку.
type OrderModify struct {
	Status       *OrderStatusType
	Courier      *CourierRef
	ClearCourier bool
	AppendNote   *Note
}

type OrderFilter struct {
	Status      *OrderStatusType
	CourierID   *int64
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
}

// PriceQuote результат оценки стоимости: дистанция и сумма фиксируются
// один раз при создании заказа и дальше не пересчитываются.
type PriceQuote struct {
	DistanceKm float64
	Amount     int64
}
