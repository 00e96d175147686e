package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"service/internal/entities"
)

// createMaxIDAttempts ограничивает перегенерацию id при коллизии
// суффикса внутри одной минуты. Хранилище дубликат всегда отклоняет,
// после исчерпания попыток конфликт отдается наружу.
const createMaxIDAttempts = 3

type Service struct {
	repository  Repository
	idGenerator IDGenerator
	estimator   Estimator
	timeFactory DeliveryTimeFactory
	clock       Clock
	notifier    Notifier
	purgers     []PurgeCollaborator
	txManager   TxManager
}

func New(
	repository Repository,
	idGenerator IDGenerator,
	estimator Estimator,
	timeFactory DeliveryTimeFactory,
	clock Clock,
	notifier Notifier,
	purgers []PurgeCollaborator,
	txManager TxManager,
) *Service {
	return &Service{
		repository:  repository,
		idGenerator: idGenerator,
		estimator:   estimator,
		timeFactory: timeFactory,
		clock:       clock,
		notifier:    notifier,
		purgers:     purgers,
		txManager:   txManager,
	}
}

func (s *Service) CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	quote, err := s.estimator.Estimate(
		draft.Sender.Address,
		draft.Receiver.Address,
		draft.Package.WeightKg,
		draft.Package.Type,
		draft.ServiceTier,
	)
	if err != nil {
		return nil, fmt.Errorf("estimate order price: %w", err)
	}

	now := s.clock.Now()
	orderEntity := entities.Order{
		Sender:              draft.Sender,
		Receiver:            draft.Receiver,
		Package:             draft.Package,
		ServiceTier:         draft.ServiceTier,
		DistanceKm:          quote.DistanceKm,
		Amount:              quote.Amount,
		Status:              entities.OrderPending,
		CreatedAt:           now,
		EstimatedDeliveryAt: s.timeFactory.CalculateEstimate(draft.ServiceTier, quote.DistanceKm, now),
		Notes: []entities.Note{
			{At: now, Text: "order created"},
		},
	}

	var created *entities.Order
	for attempt := 0; attempt < createMaxIDAttempts; attempt++ {
		orderEntity.ID = s.idGenerator.Generate()

		created, err = s.repository.Create(ctx, orderEntity)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrOrderIDConflict) {
			return nil, fmt.Errorf("create order: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.notifier.OnLifecycleEvent(ctx, created, "", entities.OrderPending)
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// TransitionOrder применяет переход статуса. Проверка допустимости и
// запись аудит-заметки выполняются в одной транзакции с обновлением,
// событие жизненного цикла уходит ровно одно и только после коммита.
func (s *Service) TransitionOrder(ctx context.Context, orderID string, target entities.OrderStatusType, actor string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}
	if strings.TrimSpace(actor) == "" {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Order
	var fromStatus entities.OrderStatusType

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !current.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}
		fromStatus = current.Status

		note := entities.Note{
			At:   s.clock.Now(),
			Text: fmt.Sprintf("status %s -> %s by %s", current.Status, target, actor),
		}
		updated, err = s.repository.Update(ctx, orderID, entities.OrderModify{
			Status:     &target,
			AppendNote: &note,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.OnLifecycleEvent(ctx, updated, fromStatus, target)
	return updated, nil
}

// DeleteOrder административное удаление: запись убирается из хранилища,
// затем каждому зависимому коллаборатору ровно один раз отправляется
// purge по id. Сам id после удаления не переиспользуется, генератор
// новых таких не выдает.
func (s *Service) DeleteOrder(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	if err := s.repository.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	var purgeErrs []error
	for _, purger := range s.purgers {
		if err := purger.PurgeOrder(ctx, orderID); err != nil {
			purgeErrs = append(purgeErrs, fmt.Errorf("purge %s records for %s: %w", purger.Name(), orderID, err))
		}
	}
	return errors.Join(purgeErrs...)
}

func (s *Service) OverdueInTransit(ctx context.Context) (int64, error) {
	count, err := s.repository.CountOverdueInTransit(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("count overdue orders: %w", err)
	}
	return count, nil
}

func validateDraft(draft entities.OrderDraft) error {
	if !isValidName(draft.Sender.Name) ||
		!isValidName(draft.Receiver.Name) ||
		!isValidAddress(draft.Sender.Address) ||
		!isValidAddress(draft.Receiver.Address) {
		return ErrMissingRequiredFields
	}
	if !isValidPhone(draft.Sender.Phone) || !isValidPhone(draft.Receiver.Phone) {
		return ErrInvalidPhone
	}
	// вес, тип посылки и тариф валидирует эстимейтор, у него же
	// типизированные ошибки для этого
	return nil
}
