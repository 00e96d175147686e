// Package notification публикует интенты уведомлений в Kafka. Это
// единственный выход интентов из движка, доставкой до получателя
// занимается worker-notification-sender на другой стороне топика.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Gateway struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // сетевые ошибки брокера ретраим все
	}

	return &Gateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (g *Gateway) Deliver(ctx context.Context, intent entities.NotificationIntent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gateway notification, deliver: %w", err)
	}

	raw, err := json.Marshal(FromDomain(intent))
	if err != nil {
		return fmt.Errorf("gateway notification, marshal intent: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(intent.OrderID),
		Value: sarama.ByteEncoder(raw),
	}

	err = g.executeWithMetrics(ctx, intent.Kind.String(), func(context.Context) error {
		_, _, err := g.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway notification, publish intent for %s: %w", intent.OrderID, err)
	}

	return nil
}

func (g *Gateway) executeWithMetrics(ctx context.Context, kind string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	GatewayPublishDuration.WithLabelValues(g.topic, kind, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayPublishRetriesTotal.WithLabelValues(g.topic, kind, outcome).Inc()
	}

	return err
}
