package steps

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

const streamTimeout = 5 * time.Second

// dashboardStream reads the data lines of an open server-sent event stream.
type dashboardStream struct {
	cancel context.CancelFunc
	events chan []byte
}

func (s *dashboardStream) close() {
	s.cancel()
}

// registerStreamSteps registers dashboard stream steps.
func registerStreamSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I open the dashboard stream$`, iOpenTheDashboardStream)
	ctx.Step(`^the dashboard stream should emit an event where "([^"]*)" is "([^"]*)"$`, theDashboardStreamShouldEmit)
}

func iOpenTheDashboardStream(ctx context.Context) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}

	streamCtx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, tc.server.URL+"/api/v1/budget/dashboard/stream", nil)
	if err != nil {
		cancel()
		return ctx, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return ctx, fmt.Errorf("failed to open stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return ctx, fmt.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	stream := &dashboardStream{cancel: cancel, events: make(chan []byte, 16)}
	go func() {
		defer resp.Body.Close()
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			data, ok := strings.CutPrefix(scanner.Text(), "data:")
			if !ok {
				continue
			}
			select {
			case stream.events <- []byte(data):
			case <-streamCtx.Done():
				return
			}
		}
	}()

	tc.stream = stream
	return SetTestContext(ctx, tc), nil
}

func theDashboardStreamShouldEmit(ctx context.Context, field, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.stream == nil {
		return fmt.Errorf("dashboard stream is not open")
	}

	timeout := time.After(streamTimeout)
	var last string
	for {
		select {
		case event := <-tc.stream.events:
			last = string(event)
			value, err := lookup(event, field)
			if err == nil && fmt.Sprintf("%v", value) == tc.expand(expected) {
				return nil
			}
		case <-timeout:
			return fmt.Errorf("no dashboard event with %s=%s within %s, last event: %s", field, expected, streamTimeout, last)
		}
	}
}
