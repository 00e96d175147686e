package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	orderservice "service/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, sender_name, sender_phone, sender_address,
		receiver_name, receiver_phone, receiver_address,
		package_type, weight_kg, description, service_tier,
		distance_km, amount, status,
		courier_id, courier_name, courier_phone,
		created_at, estimated_delivery_at, notes`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	notesJSON, err := notesToJSON(orderEntity.Notes)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `INSERT INTO orders (id, sender_name, sender_phone, sender_address,
			receiver_name, receiver_phone, receiver_address,
			package_type, weight_kg, description, service_tier,
			distance_km, amount, status,
			created_at, estimated_delivery_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.Sender.Name,
		orderEntity.Sender.Phone,
		orderEntity.Sender.Address,
		orderEntity.Receiver.Name,
		orderEntity.Receiver.Phone,
		orderEntity.Receiver.Address,
		orderEntity.Package.Type.String(),
		orderEntity.Package.WeightKg,
		orderEntity.Package.Description,
		orderEntity.ServiceTier.String(),
		orderEntity.DistanceKm,
		orderEntity.Amount,
		orderEntity.Status.String(),
		orderEntity.CreatedAt,
		orderEntity.EstimatedDeliveryAt,
		notesJSON,
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, orderservice.ErrOrderIDConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderDB)
}

func (r *Repository) Update(ctx context.Context, id string, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.Courier != nil {
		builder = builder.
			Set("courier_id", orderModify.Courier.ID).
			Set("courier_name", orderModify.Courier.Name).
			Set("courier_phone", orderModify.Courier.Phone)
	}
	if orderModify.ClearCourier {
		builder = builder.
			Set("courier_id", nil).
			Set("courier_name", nil).
			Set("courier_phone", nil)
	}
	if orderModify.AppendNote != nil {
		noteJSON, err := noteToJSON(*orderModify.AppendNote)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository update error: %w", err)
		}
		// notes только дописываются, существующие элементы неизменны
		builder = builder.Set("notes", sq.Expr("notes || ?::jsonb", noteJSON))
	}

	builder = builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderDB)
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}
	if filter.CreatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *filter.CreatedTo})
	}

	// id начинается с временной метки, сортировка по нему хронологична
	builder = builder.OrderBy("id")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, *orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM orders WHERE id = $1`

	commandTag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return orderservice.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) CountOverdueInTransit(ctx context.Context, asOf time.Time) (int64, error) {
	query := `SELECT COUNT(*)
		FROM orders
		WHERE status = $1 AND estimated_delivery_at < $2`

	var count int64
	err := r.querier.QueryRow(ctx, query, entities.OrderInTransit.String(), asOf).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count overdue error: %w", err)
	}

	return count, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.SenderName,
		&orderDB.SenderPhone,
		&orderDB.SenderAddress,
		&orderDB.ReceiverName,
		&orderDB.ReceiverPhone,
		&orderDB.ReceiverAddress,
		&orderDB.PackageType,
		&orderDB.WeightKg,
		&orderDB.Description,
		&orderDB.ServiceTier,
		&orderDB.DistanceKm,
		&orderDB.Amount,
		&orderDB.Status,
		&orderDB.CourierID,
		&orderDB.CourierName,
		&orderDB.CourierPhone,
		&orderDB.CreatedAt,
		&orderDB.EstimatedDeliveryAt,
		&orderDB.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}
