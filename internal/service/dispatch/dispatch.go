package dispatch

import (
	"context"
	"fmt"
	"strings"

	"service/internal/entities"
)

type Dispatch struct {
	repository Repository
	roster     Roster
	notifier   Notifier
	clock      Clock
	txManager  TxManager
}

func New(
	repository Repository,
	roster Roster,
	notifier Notifier,
	clock Clock,
	txManager TxManager,
) *Dispatch {
	return &Dispatch{
		repository: repository,
		roster:     roster,
		notifier:   notifier,
		clock:      clock,
		txManager:  txManager,
	}
}

// Assign привязывает курьера к заказу. Повторный Assign это явная
// переназначение: прежняя привязка перезаписывается, аудит-заметка
// называет обоих курьеров, двух курьеров одновременно не бывает.
// Заказ в pending одновременно переводится в accepted (совмещенный
// "принять и назначить").
func (d *Dispatch) Assign(ctx context.Context, orderID string, courierID int64) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var (
		updated    *entities.Order
		previous   *entities.CourierRef
		fromStatus entities.OrderStatusType
		assigned   entities.CourierRef
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := d.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if orderEntity.Status.IsTerminal() {
			return fmt.Errorf("%w: %s", ErrOrderTerminal, orderEntity.Status)
		}

		courier, err := d.roster.GetByID(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier from roster: %w", err)
		}
		if !courier.Status.IsAssignable() {
			return fmt.Errorf("%w: courier %d is %s", ErrCourierUnavailable, courier.ID, courier.Status)
		}

		previous = orderEntity.Courier
		fromStatus = orderEntity.Status
		assigned = entities.CourierRef{
			ID:    courier.ID,
			Name:  courier.Name,
			Phone: courier.Phone,
		}

		noteText := fmt.Sprintf("courier %s assigned", assigned.Name)
		if previous != nil {
			noteText = fmt.Sprintf("courier reassigned: %s -> %s", previous.Name, assigned.Name)
		}
		note := entities.Note{At: d.clock.Now(), Text: noteText}

		orderModify := entities.OrderModify{
			Courier:    &assigned,
			AppendNote: &note,
		}
		if orderEntity.Status == entities.OrderPending {
			accepted := entities.OrderAccepted
			orderModify.Status = &accepted
		}

		updated, err = d.repository.Update(ctx, orderID, orderModify)
		if err != nil {
			return fmt.Errorf("bind courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notifier.OnAssignmentEvent(ctx, updated, previous, &assigned)
	if updated.Status != fromStatus {
		d.notifier.OnLifecycleEvent(ctx, updated, fromStatus, updated.Status)
	}
	return updated, nil
}

// Unassign снимает привязку курьера не трогая статус заказа.
// Без привязанного курьера это no-op: ни ошибки, ни заметки в аудите.
func (d *Dispatch) Unassign(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var (
		updated  *entities.Order
		previous *entities.CourierRef
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := d.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		previous = orderEntity.Courier
		if previous == nil {
			updated = orderEntity
			return nil
		}

		note := entities.Note{
			At:   d.clock.Now(),
			Text: fmt.Sprintf("courier %s released", previous.Name),
		}
		updated, err = d.repository.Update(ctx, orderID, entities.OrderModify{
			ClearCourier: true,
			AppendNote:   &note,
		})
		if err != nil {
			return fmt.Errorf("release courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous != nil {
		d.notifier.OnAssignmentEvent(ctx, updated, previous, nil)
	}
	return updated, nil
}

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}
