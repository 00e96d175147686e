package order

import "time"

type OrderDB struct {
	ID                  string
	SenderName          string
	SenderPhone         string
	SenderAddress       string
	ReceiverName        string
	ReceiverPhone       string
	ReceiverAddress     string
	PackageType         string
	WeightKg            float64
	Description         string
	ServiceTier         string
	DistanceKm          float64
	Amount              int64
	Status              string
	CourierID           *int64
	CourierName         *string
	CourierPhone        *string
	CreatedAt           time.Time
	EstimatedDeliveryAt time.Time
	Notes               []byte
}

// NoteDB элемент JSONB-массива notes.
type NoteDB struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}
