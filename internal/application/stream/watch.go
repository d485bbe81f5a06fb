// Package stream turns one-shot queries into push-based snapshot streams.
package stream

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/budget-buddy/backend/internal/application/adapter"
)

// Query loads one snapshot.
type Query[T any] func(ctx context.Context) (T, error)

// Watch runs query once and again after every change to one of topics,
// sending each result on the returned channel.
//
// The channel holds at most one pending snapshot: a reader that falls behind
// receives the latest state, never a backlog. A failed re-query is logged and
// skipped. The channel is closed when ctx is done.
func Watch[T any](ctx context.Context, notifier adapter.ChangeNotifier, query Query[T], topics ...adapter.Topic) (<-chan T, error) {
	ctx, cancel := context.WithCancel(ctx)

	// Subscribe before the first query so no change between the two is lost.
	changes, err := notifier.Subscribe(ctx, topics...)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to subscribe to changes: %w", err)
	}

	initial, err := query(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan T, 1)
	out <- initial

	go func() {
		defer cancel()
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				drain(changes)

				snapshot, err := query(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					slog.Error("Failed to refresh watched query",
						"topics", topics,
						"error", err,
					)
					continue
				}
				replace(out, snapshot)
			}
		}
	}()

	return out, nil
}

// drain discards notifications that are already queued; one re-query covers them all.
func drain[T any](ch <-chan T) {
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// replace puts v into the single-slot channel ch, discarding an unread older value.
// Only the producing goroutine may call it.
func replace[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
