package dispatch_unassign_post

import (
	"service/internal/entities"
	"service/internal/generated/dto"
)

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	orderDTO := dto.Order{
		OrderID: orderEntity.ID,
		Sender: dto.Party{
			Name:    orderEntity.Sender.Name,
			Phone:   orderEntity.Sender.Phone,
			Address: orderEntity.Sender.Address,
		},
		Receiver: dto.Party{
			Name:    orderEntity.Receiver.Name,
			Phone:   orderEntity.Receiver.Phone,
			Address: orderEntity.Receiver.Address,
		},
		Package: dto.Package{
			Type:        orderEntity.Package.Type.String(),
			WeightKg:    orderEntity.Package.WeightKg,
			Description: orderEntity.Package.Description,
		},
		ServiceTier:         orderEntity.ServiceTier.String(),
		DistanceKm:          orderEntity.DistanceKm,
		Amount:              orderEntity.Amount,
		Status:              orderEntity.Status.String(),
		CreatedAt:           orderEntity.CreatedAt,
		EstimatedDeliveryAt: orderEntity.EstimatedDeliveryAt,
	}

	if orderEntity.Courier != nil {
		orderDTO.Courier = &dto.CourierRef{
			ID:    orderEntity.Courier.ID,
			Name:  orderEntity.Courier.Name,
			Phone: orderEntity.Courier.Phone,
		}
	}

	orderDTO.Notes = make([]dto.Note, len(orderEntity.Notes))
	for i, note := range orderEntity.Notes {
		orderDTO.Notes[i] = dto.Note{At: note.At, Text: note.Text}
	}

	return orderDTO
}
