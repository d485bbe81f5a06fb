package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/budget-buddy/backend/internal/application/adapter"
)

// redisNotifier fans out notifications through Redis pub/sub so that several
// API instances sharing one database observe each other's writes.
type redisNotifier struct {
	client *redis.Client
	prefix string
}

// NewRedisNotifier creates a ChangeNotifier that publishes on "<prefix><topic>" channels.
func NewRedisNotifier(client *redis.Client, prefix string) adapter.ChangeNotifier {
	return &redisNotifier{
		client: client,
		prefix: prefix,
	}
}

// Publish sends one message per topic.
func (n *redisNotifier) Publish(ctx context.Context, topics ...adapter.Topic) error {
	for _, topic := range topics {
		if err := n.client.Publish(ctx, n.channel(topic), "changed").Err(); err != nil {
			return fmt.Errorf("failed to publish %s change: %w", topic, err)
		}
	}
	return nil
}

// Subscribe returns once Redis has confirmed the subscription.
func (n *redisNotifier) Subscribe(ctx context.Context, topics ...adapter.Topic) (<-chan adapter.Topic, error) {
	channels := make([]string, 0, len(topics))
	for _, topic := range topics {
		channels = append(channels, n.channel(topic))
	}

	pubsub := n.client.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %v: %w", channels, err)
	}

	out := make(chan adapter.Topic, subscriberBuffer)
	messages := pubsub.Channel()

	go func() {
		defer close(out)
		defer func() {
			if err := pubsub.Close(); err != nil {
				slog.Warn("Failed to close redis subscription", "error", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- adapter.Topic(strings.TrimPrefix(msg.Channel, n.prefix)):
				default:
				}
			}
		}
	}()

	return out, nil
}

func (n *redisNotifier) channel(topic adapter.Topic) string {
	return n.prefix + string(topic)
}
