// File: barberbook/services/realtime/realtime.go
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// StatusTopic carries channel lifecycle events (connected, disconnected).
const StatusTopic = "system.status"

// Event is one message delivered to subscribers.
type Event struct {
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

// Subscription is a live registration on one or more topics. Events arrive
// on C; Unsubscribe tears the registration down and closes C.
type Subscription struct {
	C chan Event

	pubsub *redis.PubSub
	done   chan struct{}
	once   sync.Once
}

// Unsubscribe deregisters the handler and closes the delivery channel. It
// also releases a forwarder blocked on a full buffer, so an abandoned
// subscription never strands its goroutine.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.done)
		if s.pubsub != nil {
			_ = s.pubsub.Close()
		}
	})
}

// forward pumps raw messages into C until the source closes or the
// subscription is torn down.
func (s *Subscription) forward(msgs <-chan *redis.Message) {
	defer close(s.C)
	for msg := range msgs {
		select {
		case s.C <- Event{Topic: msg.Channel, Payload: json.RawMessage(msg.Payload)}:
		case <-s.done:
			return
		}
	}
}

// Channel is a typed publish/subscribe interface over Redis Pub/Sub. It has
// no fixed message schema; features attach their own topics.
type Channel struct {
	client *redis.Client
	logger *zap.Logger
}

// NewChannel wraps an initialized Redis client.
func NewChannel(client *redis.Client, logger *zap.Logger) *Channel {
	return &Channel{client: client, logger: logger}
}

// Subscribe registers on the given topics and returns the live handle.
func (c *Channel) Subscribe(ctx context.Context, topics ...string) (*Subscription, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("at least one topic is required")
	}
	pubsub := c.client.Subscribe(ctx, topics...)
	// Force the subscription onto the wire before handing out the handle.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	sub := &Subscription{
		C:      make(chan Event, 16),
		pubsub: pubsub,
		done:   make(chan struct{}),
	}
	go sub.forward(pubsub.Channel())
	return sub, nil
}

// Emit publishes a payload on a topic.
func (c *Channel) Emit(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}
	if err := c.client.Publish(ctx, topic, data).Err(); err != nil {
		c.logger.Warn("event publish failed", zap.String("topic", topic), zap.Error(err))
		return err
	}
	return nil
}

// EmitStatus publishes a lifecycle event on the status topic.
func (c *Channel) EmitStatus(ctx context.Context, status string) {
	_ = c.Emit(ctx, StatusTopic, map[string]string{"status": status})
}

// Close tears down the underlying connection.
func (c *Channel) Close() error {
	return c.client.Close()
}
