package notification_intent

type intentEvent struct {
	OrderID      string             `json:"order_ID"`
	Recipient    string             `json:"recipient"`
	Kind         string             `json:"kind"`
	StatusChange *statusChangeEvent `json:"status_change,omitempty"`
	Assignment   *assignmentEvent   `json:"assignment,omitempty"`
}

type statusChangeEvent struct {
	From  string `json:"from,omitempty"`
	To    string `json:"to"`
	Actor string `json:"actor,omitempty"`
}

type assignmentEvent struct {
	Previous *courierRefEvent `json:"previous,omitempty"`
	New      *courierRefEvent `json:"new,omitempty"`
}

type courierRefEvent struct {
	ID    int64  `json:"ID"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
