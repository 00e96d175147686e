package entities

import (
	"time"
)

// Courier запись реестра курьеров. Реестром владеет внешний
// employee-directory, движок его только читает.
type Courier struct {
	ID        int64
	Name      string
	Phone     string
	Status    CourierStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CourierStatusType string

const (
	CourierAvailable CourierStatusType = "available"
	CourierBusy      CourierStatusType = "busy"
	CourierPaused    CourierStatusType = "paused"
)

func (t CourierStatusType) String() string {
	return string(t)
}

// IsAssignable: назначать заказы можно только на available.
func (t CourierStatusType) IsAssignable() bool {
	return t == CourierAvailable
}
