package persistence

import (
	"context"
	"log/slog"

	"github.com/budget-buddy/backend/internal/application/adapter"
)

// publish notifies subscribers after a committed write. The write already
// succeeded, so a notifier failure is logged rather than returned.
func publish(ctx context.Context, notifier adapter.ChangeNotifier, topics ...adapter.Topic) {
	if err := notifier.Publish(context.WithoutCancel(ctx), topics...); err != nil {
		slog.Warn("Failed to publish change notification",
			"topics", topics,
			"error", err,
		)
	}
}
