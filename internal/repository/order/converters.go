package order

import (
	"encoding/json"
	"fmt"

	"service/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var notesDB []NoteDB
	if len(o.Notes) > 0 {
		if err := json.Unmarshal(o.Notes, &notesDB); err != nil {
			return nil, fmt.Errorf("unmarshal order notes: %w", err)
		}
	}
	notes := make([]entities.Note, len(notesDB))
	for i, noteDB := range notesDB {
		notes[i] = entities.Note{At: noteDB.At, Text: noteDB.Text}
	}

	var courierRef *entities.CourierRef
	if o.CourierID != nil {
		courierRef = &entities.CourierRef{ID: *o.CourierID}
		if o.CourierName != nil {
			courierRef.Name = *o.CourierName
		}
		if o.CourierPhone != nil {
			courierRef.Phone = *o.CourierPhone
		}
	}

	return &entities.Order{
		ID: o.ID,
		Sender: entities.Party{
			Name:    o.SenderName,
			Phone:   o.SenderPhone,
			Address: o.SenderAddress,
		},
		Receiver: entities.Party{
			Name:    o.ReceiverName,
			Phone:   o.ReceiverPhone,
			Address: o.ReceiverAddress,
		},
		Package: entities.Package{
			Type:        entities.PackageType(o.PackageType),
			WeightKg:    o.WeightKg,
			Description: o.Description,
		},
		ServiceTier:         entities.ServiceTierType(o.ServiceTier),
		DistanceKm:          o.DistanceKm,
		Amount:              o.Amount,
		Status:              entities.OrderStatusType(o.Status),
		Courier:             courierRef,
		CreatedAt:           o.CreatedAt,
		EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		Notes:               notes,
	}, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	if len(ordersDB) == 0 {
		return []entities.Order{}, nil
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		orderDomain, err := ToDomain(&orderDB)
		if err != nil {
			return nil, err
		}
		result[i] = *orderDomain
	}
	return result, nil
}

func notesToJSON(notes []entities.Note) ([]byte, error) {
	notesDB := make([]NoteDB, len(notes))
	for i, note := range notes {
		notesDB[i] = NoteDB(note)
	}
	raw, err := json.Marshal(notesDB)
	if err != nil {
		return nil, fmt.Errorf("marshal order notes: %w", err)
	}
	return raw, nil
}

func noteToJSON(note entities.Note) ([]byte, error) {
	return notesToJSON([]entities.Note{note})
}
