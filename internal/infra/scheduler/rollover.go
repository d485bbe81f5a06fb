// Package scheduler runs time-based jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/budget-buddy/backend/internal/application/adapter"
)

// publishTimeout bounds a single clock notification.
const publishTimeout = 5 * time.Second

// Rollover publishes a clock change on a cron schedule, normally at midnight UTC,
// so that streams depending on "today" re-emit.
type Rollover struct {
	cron     *cron.Cron
	notifier adapter.ChangeNotifier
}

// NewRollover schedules the clock notification. spec accepts standard five-field
// cron expressions and descriptors such as "@midnight" or "@every 1h".
func NewRollover(notifier adapter.ChangeNotifier, spec string) (*Rollover, error) {
	r := &Rollover{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		notifier: notifier,
	}
	if _, err := r.cron.AddFunc(spec, r.tick); err != nil {
		return nil, fmt.Errorf("invalid rollover schedule %q: %w", spec, err)
	}
	return r, nil
}

// Run starts the scheduler and blocks until ctx is done.
func (r *Rollover) Run(ctx context.Context) error {
	r.cron.Start()
	slog.Info("Day rollover scheduler started")

	<-ctx.Done()

	<-r.cron.Stop().Done()
	slog.Info("Day rollover scheduler stopped")
	return nil
}

func (r *Rollover) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := r.notifier.Publish(ctx, adapter.TopicClock); err != nil {
		slog.Error("Failed to publish day rollover", "error", err)
		return
	}
	slog.Debug("Published day rollover")
}
