package notification

import (
	"service/internal/entities"
)

func FromDomain(intent entities.NotificationIntent) *NotificationIntentDTO {
	dto := &NotificationIntentDTO{
		OrderID:   intent.OrderID,
		Recipient: intent.Recipient.String(),
		Kind:      intent.Kind.String(),
	}

	switch payload := intent.Payload.(type) {
	case entities.StatusChangePayload:
		dto.StatusChange = &StatusChangeDTO{
			From:  payload.From.String(),
			To:    payload.To.String(),
			Actor: payload.Actor,
		}
	case entities.AssignmentPayload:
		dto.Assignment = &AssignmentDTO{
			Previous: courierRefFromDomain(payload.Previous),
			New:      courierRefFromDomain(payload.New),
		}
	}

	return dto
}

func courierRefFromDomain(ref *entities.CourierRef) *CourierRefDTO {
	if ref == nil {
		return nil
	}
	return &CourierRefDTO{
		ID:    ref.ID,
		Name:  ref.Name,
		Phone: ref.Phone,
	}
}
