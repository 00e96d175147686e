package overdue_orders

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"service/pkg/logger"
)

var overdueOrdersGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "dispatch_overdue_in_transit_orders",
	Help: "Количество заказов in_transit с истекшей оценкой времени доставки.",
})

type Service interface {
	OverdueInTransit(ctx context.Context) (int64, error)
}

type OverdueOrders struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOverdueOrders(log logger.Logger, service Service, interval time.Duration) *OverdueOrders {
	return &OverdueOrders{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OverdueOrders) TTL() time.Duration {
	return o.interval
}

func (o *OverdueOrders) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	count, err := o.service.OverdueInTransit(ctxWithTimeout)
	if err != nil {
		return err
	}

	overdueOrdersGauge.Set(float64(count))

	if count > 0 {
		o.log.With(
			logger.NewField("overdue_orders", count),
		).Warn("overdue in_transit orders detected")
	}

	return nil
}

func (o *OverdueOrders) Info() string {
	return "overdue orders scan"
}
