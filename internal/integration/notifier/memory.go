// Package notifier implements adapter.ChangeNotifier in-process and over Redis pub/sub.
package notifier

import (
	"context"
	"sync"

	"github.com/budget-buddy/backend/internal/application/adapter"
)

// subscriberBuffer bounds the notifications queued per subscriber. Overflow is
// dropped; a queued notification already triggers a re-query.
const subscriberBuffer = 16

type subscription struct {
	topics map[adapter.Topic]struct{}
	ch     chan adapter.Topic
}

// memoryNotifier delivers notifications to subscribers in the same process.
type memoryNotifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscription
}

// NewMemoryNotifier creates an in-process ChangeNotifier.
func NewMemoryNotifier() adapter.ChangeNotifier {
	return &memoryNotifier{
		subs: make(map[int]*subscription),
	}
}

// Publish notifies every subscriber of the given topics without blocking.
func (n *memoryNotifier) Publish(_ context.Context, topics ...adapter.Topic) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, sub := range n.subs {
		for _, topic := range topics {
			if _, ok := sub.topics[topic]; !ok {
				continue
			}
			select {
			case sub.ch <- topic:
			default:
			}
		}
	}
	return nil
}

// Subscribe registers a subscriber until ctx is done.
func (n *memoryNotifier) Subscribe(ctx context.Context, topics ...adapter.Topic) (<-chan adapter.Topic, error) {
	sub := &subscription{
		topics: make(map[adapter.Topic]struct{}, len(topics)),
		ch:     make(chan adapter.Topic, subscriberBuffer),
	}
	for _, topic := range topics {
		sub.topics[topic] = struct{}{}
	}

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = sub
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs, id)
		close(sub.ch)
		n.mu.Unlock()
	}()

	return sub.ch, nil
}
