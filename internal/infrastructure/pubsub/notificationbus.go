// Package pubsub relays notification pushes between server instances over
// Redis Pub/Sub.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/relatorio-inc/relatorio/internal/shared/goroutine"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

const notificationChannel = "relatorio:notifications:push"

// PushEvent carries an encoded push frame for one user.
type PushEvent struct {
	UserID     uint            `json:"user_id"`
	Payload    json.RawMessage `json:"payload"`
	InstanceID string          `json:"instance_id"`
}

// RedisNotificationBus implements cross-instance push relay using Redis Pub/Sub.
type RedisNotificationBus struct {
	client     *redis.Client
	logger     logger.Interface
	instanceID string
}

func NewRedisNotificationBus(client *redis.Client, logger logger.Interface) *RedisNotificationBus {
	return &RedisNotificationBus{
		client:     client,
		logger:     logger,
		instanceID: uuid.NewString(),
	}
}

// InstanceID identifies this process on the bus.
func (b *RedisNotificationBus) InstanceID() string {
	return b.instanceID
}

// Publish stamps the event with this instance's id so the sender skips it.
func (b *RedisNotificationBus) Publish(ctx context.Context, userID uint, payload []byte) error {
	data, err := json.Marshal(PushEvent{UserID: userID, Payload: payload, InstanceID: b.instanceID})
	if err != nil {
		return fmt.Errorf("failed to marshal push event: %w", err)
	}

	if err := b.client.Publish(ctx, notificationChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish push event", "user_id", userID, "error", err)
		return fmt.Errorf("failed to publish push event: %w", err)
	}
	return nil
}

// Subscribe blocks until ctx is done, reconnecting with exponential backoff.
// Events published by this instance are filtered out.
func (b *RedisNotificationBus) Subscribe(ctx context.Context, handler func(userID uint, payload []byte)) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		b.logger.Warnw("push subscription disconnected, reconnecting",
			"channel", notificationChannel,
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisNotificationBus) subscribe(ctx context.Context, handler func(userID uint, payload []byte)) error {
	sub := b.client.Subscribe(ctx, notificationChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", notificationChannel, err)
	}
	b.logger.Infow("subscribed to push channel", "channel", notificationChannel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			event, err := decodePushEvent(msg.Payload)
			if err != nil {
				b.logger.Warnw("failed to unmarshal push event", "error", err)
				continue
			}
			if event.InstanceID == b.instanceID {
				continue
			}
			goroutine.SafeGo(b.logger, "push-relay", func() {
				handler(event.UserID, event.Payload)
			})
		}
	}
}

func decodePushEvent(payload string) (*PushEvent, error) {
	var event PushEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return nil, err
	}
	if event.UserID == 0 {
		return nil, fmt.Errorf("push event without user id")
	}
	return &event, nil
}
