package adapter

import "context"

// Topic names a stream of change notifications.
type Topic string

const (
	TopicCategories   Topic = "categories"
	TopicTransactions Topic = "transactions"
	TopicGoals        Topic = "goals"
	// TopicClock fires when the calendar day changes.
	TopicClock Topic = "clock"
)

// ChangeNotifier fans out change notifications to subscribers.
// Stores publish after every committed mutation.
type ChangeNotifier interface {
	// Publish notifies subscribers of the given topics.
	Publish(ctx context.Context, topics ...Topic) error

	// Subscribe returns a channel that receives the topic of every change to one of topics.
	// Notifications may be coalesced for slow readers. The channel is closed when ctx is done.
	Subscribe(ctx context.Context, topics ...Topic) (<-chan Topic, error)
}
