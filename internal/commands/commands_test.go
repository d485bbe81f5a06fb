package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-buddy/backend/config"
	"github.com/budget-buddy/backend/internal/application/usecase/category"
	"github.com/budget-buddy/backend/internal/application/usecase/goal"
	"github.com/budget-buddy/backend/internal/application/usecase/transaction"
	"github.com/budget-buddy/backend/internal/domain/entity"
	"github.com/budget-buddy/backend/internal/infra/db"
	"github.com/budget-buddy/backend/internal/infra/dependency"
	"github.com/budget-buddy/backend/internal/integration/notifier"
)

type cli struct {
	t    *testing.T
	path string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("NOTIFIER_BACKEND", config.NotifierMemory)
	t.Setenv("DATABASE_MIGRATIONS", config.MigrationsAuto)
	return &cli{t: t, path: filepath.Join(t.TempDir(), "budget.db")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--database-driver", "sqlite", "--database-url", c.path}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// withUseCases opens the CLI database directly to arrange data.
func (c *cli) withUseCases(fn func(uc *dependency.UseCases)) {
	c.t.Helper()
	cfg := config.Load()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.URL = c.path
	database, err := db.NewConnection(&cfg.Database)
	require.NoError(c.t, err)
	defer database.Close()
	fn(dependency.NewUseCases(cfg, database.DB(), notifier.NewMemoryNotifier()))
}

func TestMigrateAndSeed(t *testing.T) {
	c := newCLI(t)

	out, err := c.run("migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Database migrations completed")

	out, err = c.run("seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Created 10 default categories")

	out, err = c.run("seed")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")
}

func TestOverview(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("migrate")
	require.NoError(t, err)

	c.withUseCases(func(uc *dependency.UseCases) {
		ctx := context.Background()
		cat, err := uc.CreateCategory.Execute(ctx, category.CreateCategoryInput{
			Name: "Salary", Icon: "💰", Color: "#4CAF50", Type: entity.TransactionTypeIncome,
		})
		require.NoError(t, err)
		_, err = uc.CreateTransaction.Execute(ctx, transaction.CreateTransactionInput{
			Amount:     decimal.RequireFromString("1000.50"),
			Type:       entity.TransactionTypeIncome,
			CategoryID: cat.Category.ID,
			Date:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	})

	out, err := c.run("overview")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance")
	assert.Contains(t, out, "1000.50")

	out, err = c.run("overview", "-o", "json")
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, 1000.5, body["balance"])
	assert.Equal(t, float64(1), body["transaction_count"])
}

func TestStats(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("migrate")
	require.NoError(t, err)

	out, err := c.run("stats", "--start", "2026-02-01", "--end", "2026-02-28", "-o", "json")
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "2026-02-01 - 2026-02-28", body["period"])
	assert.Equal(t, float64(0), body["savings_rate"])

	_, err = c.run("stats", "--start", "2026-03-01", "--end", "2026-02-01")
	assert.Error(t, err)

	_, err = c.run("stats", "--start", "2026-03-01")
	assert.ErrorContains(t, err, "must be given together")

	_, err = c.run("stats", "--start", "03/01/2026", "--end", "2026-04-01")
	assert.ErrorContains(t, err, "invalid --start")

	out, err = c.run("stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Savings rate")
}

func TestGoals(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("migrate")
	require.NoError(t, err)

	c.withUseCases(func(uc *dependency.UseCases) {
		ctx := context.Background()
		_, err := uc.CreateGoal.Execute(ctx, goal.CreateGoalInput{
			Title:         "Vacation",
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(250),
		})
		require.NoError(t, err)
		done, err := uc.CreateGoal.Execute(ctx, goal.CreateGoalInput{
			Title:        "Laptop",
			TargetAmount: decimal.NewFromInt(500),
		})
		require.NoError(t, err)
		_, err = uc.CompleteGoal.Execute(ctx, done.Goal.ID)
		require.NoError(t, err)
	})

	out, err := c.run("goals")
	require.NoError(t, err)
	assert.Contains(t, out, "Vacation")
	assert.Contains(t, out, "25.00%")
	assert.NotContains(t, out, "Laptop")

	out, err = c.run("goals", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Laptop")

	out, err = c.run("goals", "-o", "json")
	require.NoError(t, err)
	var body struct {
		Goals []struct {
			Title           string  `json:"title"`
			RemainingAmount float64 `json:"remaining_amount"`
		} `json:"goals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	require.Len(t, body.Goals, 1)
	assert.Equal(t, 750.0, body.Goals[0].RemainingAmount)
}

func TestInvalidFlags(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("--log-level", "loud", "migrate")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = c.run("migrate")
	require.NoError(t, err)
	_, err = c.run("-o", "yaml", "stats")
	assert.ErrorContains(t, err, "unsupported output format")
}
