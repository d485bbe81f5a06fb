package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/application/usecase/category"
	"github.com/budget-buddy/backend/internal/application/usecase/transaction"
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// registerDataSteps registers steps that arrange data through the use cases.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the default categories are seeded$`, theDefaultCategoriesAreSeeded)
	ctx.Step(`^an? "(income|expense)" category "([^"]*)" exists as "([^"]*)"$`, aCategoryExistsAs)
	ctx.Step(`^an? "(income|expense)" transaction of "([^"]*)" in "([^"]*)" on "([^"]*)" exists$`, aTransactionExists)
}

func theDefaultCategoriesAreSeeded(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	_, err = tc.injector.UseCases.SeedCategories.Execute(ctx)
	return err
}

func aCategoryExistsAs(ctx context.Context, kind, name, saveAs string) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}

	out, err := tc.injector.UseCases.CreateCategory.Execute(ctx, category.CreateCategoryInput{
		Name:  name,
		Icon:  "🏷️",
		Color: "#607D8B",
		Type:  entity.TransactionType(kind),
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to create category %q: %w", name, err)
	}

	tc.vars[saveAs] = out.Category.ID.String()
	return SetTestContext(ctx, tc), nil
}

func aTransactionExists(ctx context.Context, kind, amount, categoryVar, date string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}

	categoryID, err := uuid.Parse(tc.vars[categoryVar])
	if err != nil {
		return fmt.Errorf("unknown category %q", categoryVar)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return err
	}

	_, err = tc.injector.UseCases.CreateTransaction.Execute(ctx, transaction.CreateTransactionInput{
		Amount:     value,
		Type:       entity.TransactionType(kind),
		CategoryID: categoryID,
		Date:       day,
	})
	return err
}
