// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/budget-buddy/backend/config"
	"github.com/budget-buddy/backend/internal/infra/dependency"
	"github.com/budget-buddy/backend/internal/integration/notifier"
	"github.com/budget-buddy/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Values saved from earlier responses, substituted for {name}
	vars map[string]string

	// Dashboard stream
	stream *dashboardStream

	injector *dependency.Injector
	redis    *redis.Client
	cfg      *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewDb()
		mock.NewRedis()
	})

	ctx.AfterSuite(func() {
		_ = mock.NewDb().Close()
		_ = mock.NewRedis().Close()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		database := mock.NewDb()
		if err := mock.ClearDB(database); err != nil {
			return ctx, err
		}
		redisConn := mock.NewRedis()
		if err := mock.ClearRedis(redisConn); err != nil {
			return ctx, err
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Notifier.Backend = config.NotifierRedis
		cfg.RateLimit.WriteRequestsPerMinute = 0
		cfg.Budget.CategoryDeletePolicy = "cascade"
		for _, tag := range sc.Tags {
			if tag.Name == "@restrict" {
				cfg.Budget.CategoryDeletePolicy = "restrict"
			}
		}

		changes := notifier.NewRedisNotifier(redisConn, cfg.Redis.ChannelPrefix)
		injector := dependency.NewInjector(cfg, database, changes)

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			vars:           make(map[string]string),
			injector:       injector,
			redis:          redisConn,
			cfg:            cfg,
		}
		tc.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc == nil {
			return ctx, nil
		}
		if tc.stream != nil {
			tc.stream.close()
		}
		if tc.server != nil {
			tc.server.CloseClientConnections()
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDataSteps(ctx)
	registerStreamSteps(ctx)
}

// expand replaces {name} placeholders with saved values.
func (tc *TestContext) expand(s string) string {
	for name, value := range tc.vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func testContext(ctx context.Context) (*TestContext, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}
	return tc, nil
}
