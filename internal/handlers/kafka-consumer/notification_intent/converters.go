package notification_intent

import (
	"service/internal/entities"
)

func toDomain(event intentEvent) entities.NotificationIntent {
	intent := entities.NotificationIntent{
		OrderID:   event.OrderID,
		Recipient: entities.RecipientRole(event.Recipient),
		Kind:      entities.IntentKind(event.Kind),
	}

	switch {
	case event.StatusChange != nil:
		intent.Payload = entities.StatusChangePayload{
			From:  entities.OrderStatusType(event.StatusChange.From),
			To:    entities.OrderStatusType(event.StatusChange.To),
			Actor: event.StatusChange.Actor,
		}
	case event.Assignment != nil:
		intent.Payload = entities.AssignmentPayload{
			Previous: toCourierRef(event.Assignment.Previous),
			New:      toCourierRef(event.Assignment.New),
		}
	}

	return intent
}

func toCourierRef(ref *courierRefEvent) *entities.CourierRef {
	if ref == nil {
		return nil
	}
	return &entities.CourierRef{
		ID:    ref.ID,
		Name:  ref.Name,
		Phone: ref.Phone,
	}
}
