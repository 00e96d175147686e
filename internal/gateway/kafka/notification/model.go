package notification

// NotificationIntentDTO формат сообщения в топике интентов. Ключ
// сообщения это order_ID: интенты одного заказа читаются по порядку.
type NotificationIntentDTO struct {
	OrderID      string           `json:"order_ID"`
	Recipient    string           `json:"recipient"`
	Kind         string           `json:"kind"`
	StatusChange *StatusChangeDTO `json:"status_change,omitempty"`
	Assignment   *AssignmentDTO   `json:"assignment,omitempty"`
}

type StatusChangeDTO struct {
	From  string `json:"from,omitempty"`
	To    string `json:"to"`
	Actor string `json:"actor,omitempty"`
}

type AssignmentDTO struct {
	Previous *CourierRefDTO `json:"previous,omitempty"`
	New      *CourierRefDTO `json:"new,omitempty"`
}

type CourierRefDTO struct {
	ID    int64  `json:"ID"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
